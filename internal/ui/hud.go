//go:build ebiten

package ui

import (
	"image/color"

	"donut/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the torus view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
}

// NewHUD constructs a HUD listing the provided parameters.
func NewHUD(params core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, lines: layoutLines(params)}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, st Status) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, statusLine(st), face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing

	for _, l := range h.lines {
		if y > height-panelPadding {
			break
		}
		if l.header {
			y += lineGap
			text.Draw(h.panel, l.label, face, panelPadding, y, color.RGBA{R: 140, G: 180, B: 230, A: 255})
			y += lineHeight
			continue
		}
		text.Draw(h.panel, l.label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueWidth := text.BoundString(face, l.value).Dx()
		text.Draw(h.panel, l.value, face, h.width-panelPadding-valueWidth, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	lineGap        = 6
	headerBaseline = 18
	infoSpacing    = 22
)
