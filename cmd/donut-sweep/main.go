// Command donut-sweep renders the torus at a grid of sampling densities and
// reports how well each one fills the frame. Holes are narrow blank gaps
// between drawn cells of a row, where samples landed too far apart.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"donut/internal/config"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	frames := flag.Int("frames", 8, "frames rendered per density")
	top := flag.Int("top", 10, "results to print")
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

	sc, err := cfg.Scene()
	if err != nil {
		logger.Error("scene", "err", err)
		os.Exit(1)
	}

	ringSteps := []float64{0.02, 0.04, 0.06, 0.08, 0.12, 0.16}
	tubeSteps := []float64{0.05, 0.1, 0.2, 0.3, 0.45, 0.6}
	cases := densities(cfg.Torus, ringSteps, tubeSteps)

	fmt.Printf("Sweeping %d densities (%d workers, %d frames)\n", len(cases), *workers, *frames)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, sc, cases, *frames, *workers)
	if err != nil {
		logger.Error("sweep failed", "err", err)
		stop()
		os.Exit(1)
	}
	rank(results)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}
