package core

import "math"

const (
	// Blank is the glyph of a cell nothing was drawn to.
	Blank byte = ' '
)

// Sentinel is the depth of a cell nothing was drawn to. It compares greater
// than any real depth.
var Sentinel = math.Inf(1)

// FrameBuffer stores a character grid and a parallel depth grid in row-major
// order. Coordinates are centred: x runs over [-W/2, W/2) and y over
// [-H/2, H/2), with y = -H/2 on the first row.
type FrameBuffer struct {
	W, H   int
	glyphs []byte
	depth  []float64
}

// NewFrameBuffer allocates a cleared buffer with the given dimensions.
func NewFrameBuffer(size Size) *FrameBuffer {
	w, h := size.W, size.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	fb := &FrameBuffer{W: w, H: h, glyphs: make([]byte, w*h), depth: make([]float64, w*h)}
	fb.Clear()
	return fb
}

// Size returns the buffer dimensions.
func (fb *FrameBuffer) Size() Size { return Size{W: fb.W, H: fb.H} }

// Glyphs exposes the character grid.
func (fb *FrameBuffer) Glyphs() []byte { return fb.glyphs }

// Depth exposes the depth grid.
func (fb *FrameBuffer) Depth() []float64 { return fb.depth }

// Row returns row y (0-based from the top) of the character grid.
func (fb *FrameBuffer) Row(y int) []byte { return fb.glyphs[y*fb.W : (y+1)*fb.W] }

// Index maps centred coordinates to a cell index, or -1 when (x, y) lies
// outside the grid.
func (fb *FrameBuffer) Index(x, y int) int {
	hw, hh := fb.W/2, fb.H/2
	if x < -hw || x >= hw || y < -hh || y >= hh {
		return -1
	}
	return (y+hh)*fb.W + x + hw
}

// Plot stores glyph g at index i if depth z is nearer than what is there. It
// reports whether the cell was written.
func (fb *FrameBuffer) Plot(i int, z float64, g byte) bool {
	if i < 0 || i >= len(fb.depth) || !(z < fb.depth[i]) {
		return false
	}
	fb.depth[i] = z
	fb.glyphs[i] = g
	return true
}

// Clear resets every cell to the blank glyph and the sentinel depth in place.
func (fb *FrameBuffer) Clear() {
	for i := range fb.glyphs {
		fb.glyphs[i] = Blank
	}
	for i := range fb.depth {
		fb.depth[i] = Sentinel
	}
}
