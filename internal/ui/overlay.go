//go:build ebiten

package ui

import (
	"image/color"

	"donut/internal/core"
	"donut/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the torus.
type Overlay struct {
	painter   *render.GridPainter
	scale     int
	showDepth bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(painter *render.GridPainter, scale int) *Overlay {
	return &Overlay{painter: painter, scale: scale}
}

// Update toggles the depth view on D.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDepth = !o.showDepth
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, fb *core.FrameBuffer) {
	if o.showDepth {
		o.painter.BlitDepth(screen, fb.Depth(), color.RGBA{R: 255, G: 120, B: 40, A: 255}, o.scale)
	}
}
