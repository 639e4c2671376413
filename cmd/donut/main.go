// Command donut spins a shaded torus in the terminal.
//
// Usage:
//
//	donut [-display ansi|termbox] [-fps 60] [-config donut.toml] [innerRadius tubeRadius ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"donut/internal/anim"
	"donut/internal/config"
	"donut/internal/core"
	_ "donut/internal/display/ansi"
	_ "donut/internal/display/termbox"
	"donut/internal/mesh"
	"donut/internal/render"
)

// statsInterval is how often the loop logs render statistics at debug level.
const statsInterval = time.Second

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] %s\n", os.Args[0], config.Usage)
		flag.PrintDefaults()
	}
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := cfg.NewLogger(os.Stderr)
	if err := run(cfg, logger); err != nil {
		logger.Error("donut failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	factory, ok := core.Displays()[cfg.Display]
	if !ok {
		return fmt.Errorf("unknown display %q (have %s)", cfg.Display, strings.Join(core.DisplayNames(), ", "))
	}

	m, err := mesh.Generate(cfg.Torus)
	if err != nil {
		return err
	}
	sc, err := cfg.Scene()
	if err != nil {
		return err
	}
	for _, g := range cfg.Parameters().Groups {
		attrs := make([]any, 0, 2*len(g.Params))
		for _, p := range g.Params {
			attrs = append(attrs, p.Key, p.Value)
		}
		logger.Info(strings.ToLower(g.Name), attrs...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	display, err := factory(core.DisplayOptions{Out: os.Stdout, Logger: logger, Quit: cancel})
	if err != nil {
		return err
	}
	defer func() {
		if err := display.Close(); err != nil {
			logger.Warn("close display", "err", err)
		}
	}()

	loop, err := anim.New(anim.Config{
		Renderer:   render.New(m, sc),
		Display:    display,
		FPS:        cfg.FPS,
		Logger:     logger,
		StatsEvery: statsInterval,
	})
	if err != nil {
		return err
	}
	return loop.Run(ctx)
}
