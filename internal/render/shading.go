package render

import (
	"math"

	"donut/internal/linalg"
)

// Ramp orders glyphs from least to most visually dense.
const Ramp = ".,-~:;=!*#@"

// Levels is the number of shading steps in Ramp.
const Levels = len(Ramp)

// Shade maps the angle between the light and a unit normal to [0, 1].
func Shade(light, normal linalg.Vec3) float64 {
	return (linalg.Dot(light, normal) + 1) / 2
}

// Level quantises an intensity to an index into Ramp, clamped so rounding
// noise at either end stays in range.
func Level(intensity float64) int {
	if math.IsNaN(intensity) {
		return 0
	}
	l := int(math.Floor(intensity * float64(Levels-1)))
	if l < 0 {
		return 0
	}
	if l > Levels-1 {
		return Levels - 1
	}
	return l
}

// Glyph returns the ramp character for an intensity.
func Glyph(intensity float64) byte { return Ramp[Level(intensity)] }

// LevelOf returns the ramp index of glyph g, or -1 for glyphs not in Ramp.
func LevelOf(g byte) int {
	for i := 0; i < Levels; i++ {
		if Ramp[i] == g {
			return i
		}
	}
	return -1
}
