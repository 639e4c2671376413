//go:build ebiten

// Command donut-gui spins the shaded torus in a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"donut/internal/app"
	"donut/internal/config"
	"donut/internal/mesh"
	"donut/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.NewLogger(os.Stderr)

	m, err := mesh.Generate(cfg.Torus)
	if err != nil {
		logger.Error("generate mesh", "err", err)
		os.Exit(1)
	}
	sc, err := cfg.Scene()
	if err != nil {
		logger.Error("build scene", "err", err)
		os.Exit(1)
	}

	game := app.New(render.New(m, sc), cfg.Parameters(), cfg.Scale)
	size := sc.Viewport.Size()

	ebiten.SetWindowTitle("donut")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	logger.Info("window opened", "samples", m.Len(), "width", size.W, "height", size.H)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}
