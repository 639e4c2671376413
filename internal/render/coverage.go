package render

import "donut/internal/core"

// Coverage summarises how densely a frame was filled.
type Coverage struct {
	// Drawn is the number of non-blank cells.
	Drawn int
	// Holes counts blank cells in runs of at most MaxGap cells that have a
	// drawn cell on both ends in the same row. Wider runs, such as the
	// torus's own centre, are surface that is not there rather than gaps
	// between samples.
	Holes int
}

// MaxGap is the widest blank run Measure counts as a hole.
const MaxGap = 2

// Fraction returns the share of the buffer's cells that were drawn.
func (c Coverage) Fraction(fb *core.FrameBuffer) float64 {
	n := len(fb.Glyphs())
	if n == 0 {
		return 0
	}
	return float64(c.Drawn) / float64(n)
}

// Measure scans fb row by row.
func Measure(fb *core.FrameBuffer) Coverage {
	var c Coverage
	for y := 0; y < fb.H; y++ {
		row := fb.Row(y)
		first, last := -1, -1
		for x, g := range row {
			if g == core.Blank {
				continue
			}
			c.Drawn++
			if first < 0 {
				first = x
			}
			last = x
		}
		run := 0
		for x := first + 1; first >= 0 && x <= last; x++ {
			if row[x] == core.Blank {
				run++
				continue
			}
			if run <= MaxGap {
				c.Holes += run
			}
			run = 0
		}
	}
	return c
}
