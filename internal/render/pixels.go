package render

import (
	"image/color"
	"math"
)

// Grayscale returns a palette with one entry per ramp level, from dim to
// bright.
func Grayscale(lo, hi uint8) []color.RGBA {
	palette := make([]color.RGBA, Levels)
	for i := range palette {
		t := float64(i) / float64(Levels-1)
		v := uint8(math.Round(float64(lo) + (float64(hi)-float64(lo))*t))
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
	return palette
}

// fillGlyphRGBA converts glyph cells into RGBA pixels in buf using a palette
// indexed by ramp level. Blank and unknown glyphs use bg.
func fillGlyphRGBA(buf []byte, glyphs []byte, palette []color.RGBA, bg color.RGBA) {
	last := len(palette) - 1
	for i, g := range glyphs {
		col := bg
		if idx := LevelOf(g); idx >= 0 && last >= 0 {
			if idx > last {
				idx = last
			}
			col = palette[idx]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillDepthRGBA converts a depth grid into translucent tinted pixels, nearer
// cells brighter. Cells at the sentinel depth are left transparent.
func fillDepthRGBA(buf []byte, depth []float64, tint color.RGBA) {
	near, far := math.Inf(1), math.Inf(-1)
	for _, z := range depth {
		if math.IsInf(z, 0) {
			continue
		}
		near = math.Min(near, z)
		far = math.Max(far, z)
	}
	span := far - near
	for i, z := range depth {
		base := i * 4
		if math.IsInf(z, 0) {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		t := 1.0
		if span > 0 {
			t = 1 - (z-near)/span
		}
		glow := 0.25 + 0.75*t
		buf[base+0] = uint8(math.Round(float64(tint.R) * glow))
		buf[base+1] = uint8(math.Round(float64(tint.G) * glow))
		buf[base+2] = uint8(math.Round(float64(tint.B) * glow))
		buf[base+3] = uint8(math.Round(160 * glow))
	}
}
