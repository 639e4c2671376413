//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a frame buffer into a single RGBA image.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	bg      color.RGBA

	depthImg *ebiten.Image
	depthBuf []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		palette: Grayscale(0x30, 0xff),
		bg:      color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff},
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws the glyph grid, one scaled pixel per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, glyphs []byte, scale int) {
	if len(glyphs) != gp.w*gp.h {
		return
	}
	fillGlyphRGBA(gp.buf, glyphs, gp.palette, gp.bg)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, gp.img, scale)
}

// BlitDepth draws the depth grid as a translucent overlay.
func (gp *GridPainter) BlitDepth(dst *ebiten.Image, depth []float64, tint color.RGBA, scale int) {
	if len(depth) != gp.w*gp.h {
		return
	}
	if gp.depthImg == nil {
		gp.depthImg = ebiten.NewImage(gp.w, gp.h)
		gp.depthBuf = make([]byte, 4*gp.w*gp.h)
	}
	fillDepthRGBA(gp.depthBuf, depth, tint)
	gp.depthImg.WritePixels(gp.depthBuf)
	gp.draw(dst, gp.depthImg, scale)
}

func (gp *GridPainter) draw(dst, src *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(src, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
