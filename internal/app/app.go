//go:build ebiten

package app

import (
	"time"

	"donut/internal/core"
	"donut/internal/render"
	"donut/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

// Game adapts the torus renderer to the ebiten.Game interface. Ebiten calls
// Update at the configured TPS, which takes the place of the frame pacer.
type Game struct {
	renderer *render.Renderer
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	fb       *core.FrameBuffer

	scale   int
	showHUD bool
	clock   pauseClock
	stats   render.Stats
}

// New constructs a Game for the provided renderer.
func New(r *render.Renderer, params core.ParameterSnapshot, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := r.Scene().Viewport.Size()
	gp := render.NewGridPainter(size.W, size.H)
	return &Game{
		renderer: r,
		painter:  gp,
		hud:      ui.NewHUD(params, HUDWidth),
		overlay:  ui.NewOverlay(gp, scale),
		fb:       core.NewFrameBuffer(size),
		scale:    scale,
		showHUD:  true,
	}
}

// Update handles input and renders the next frame into the buffer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.toggle(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.overlay.Update()

	if g.clock.paused {
		return nil
	}
	rot := g.renderer.Scene().Rotation(g.clock.elapsed(now))
	g.fb.Clear()
	g.stats = g.renderer.Render(g.fb, rot)
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.fb.Glyphs(), g.scale)
	g.overlay.Draw(screen, g.fb)
	if g.showHUD {
		g.hud.Draw(screen, g.fb.W*g.scale, ui.Status{
			FPS:    ebiten.ActualTPS(),
			Paused: g.clock.paused,
			Drawn:  g.stats.Drawn,
		})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.W*g.scale + HUDWidth, g.fb.H * g.scale
}
