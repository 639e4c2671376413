package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBounds(t *testing.T) {
	sizes := []Size{{W: 50, H: 50}, {W: 7, H: 5}, {W: 8, H: 3}, {W: 1, H: 1}}
	for _, size := range sizes {
		fb := NewFrameBuffer(size)
		seen := make(map[int]bool, size.W*size.H)
		for y := -size.H; y <= size.H; y++ {
			for x := -size.W; x <= size.W; x++ {
				idx := fb.Index(x, y)
				inside := x >= -size.W/2 && x < size.W/2 && y >= -size.H/2 && y < size.H/2
				if !inside {
					assert.Equal(t, -1, idx, "(%d,%d) in %v", x, y, size)
					continue
				}
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, size.W*size.H)
				assert.False(t, seen[idx], "index %d assigned twice", idx)
				seen[idx] = true
			}
		}
		// Odd dimensions lose their last column/row to the centred convention.
		want := (size.W / 2 * 2) * (size.H / 2 * 2)
		assert.Len(t, seen, want, "size %v", size)
	}
}

func TestIndexCoversEvenGridExactly(t *testing.T) {
	fb := NewFrameBuffer(Size{W: 4, H: 2})
	assert.Equal(t, 0, fb.Index(-2, -1))
	assert.Equal(t, 3, fb.Index(1, -1))
	assert.Equal(t, 4, fb.Index(-2, 0))
	assert.Equal(t, 7, fb.Index(1, 0))
	assert.Equal(t, -1, fb.Index(2, 0))
	assert.Equal(t, -1, fb.Index(0, 1))
}

func TestClearRestoresInitialState(t *testing.T) {
	fresh := NewFrameBuffer(Size{W: 6, H: 4})
	fb := NewFrameBuffer(Size{W: 6, H: 4})

	require.True(t, fb.Plot(fb.Index(0, 0), 3, '@'))
	require.True(t, fb.Plot(fb.Index(-3, -2), -10, '.'))

	glyphs := fb.Glyphs()
	fb.Clear()

	assert.Equal(t, fresh.Glyphs(), fb.Glyphs())
	assert.Equal(t, fresh.Depth(), fb.Depth())
	assert.Same(t, &glyphs[0], &fb.Glyphs()[0], "Clear must reuse the buffers")
}

func TestPlotKeepsNearest(t *testing.T) {
	fb := NewFrameBuffer(Size{W: 2, H: 2})
	i := fb.Index(0, 0)

	assert.True(t, fb.Plot(i, 5, 'a'))
	assert.False(t, fb.Plot(i, 7, 'b'), "farther sample must lose")
	assert.False(t, fb.Plot(i, 5, 'c'), "equal depth keeps the first writer")
	assert.True(t, fb.Plot(i, -1, 'd'))

	assert.Equal(t, byte('d'), fb.Glyphs()[i])
	assert.Equal(t, -1.0, fb.Depth()[i])
	assert.False(t, fb.Plot(-1, 0, 'x'))
	assert.False(t, fb.Plot(len(fb.Glyphs()), 0, 'x'))
}

func TestRow(t *testing.T) {
	fb := NewFrameBuffer(Size{W: 3, H: 2})
	fb.Plot(fb.Index(-1, 0), 0, '#')
	assert.Equal(t, []byte("   "), fb.Row(0))
	assert.Equal(t, []byte("#  "), fb.Row(1))
}
