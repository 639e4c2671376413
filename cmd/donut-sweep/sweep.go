package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"donut/internal/core"
	"donut/internal/mesh"
	"donut/internal/render"
	"donut/internal/scene"
)

// frameSpacing separates the synthetic elapsed times of a case's frames.
const frameSpacing = 370 * time.Millisecond

type result struct {
	torus    mesh.Torus
	samples  int
	coverage float64
	// holes is the mean number of blank cells per frame in gaps of at most
	// render.MaxGap cells. The torus's centre is wider and not counted.
	holes float64
}

func (r result) String() string {
	return fmt.Sprintf("ring=%.3f tube=%.3f samples=%d coverage=%.3f holes=%.1f",
		r.torus.RingStep, r.torus.TubeStep, r.samples, r.coverage, r.holes)
}

// densities crosses every ring step with every tube step on top of base.
func densities(base mesh.Torus, ringSteps, tubeSteps []float64) []mesh.Torus {
	out := make([]mesh.Torus, 0, len(ringSteps)*len(tubeSteps))
	for _, rs := range ringSteps {
		for _, ts := range tubeSteps {
			t := base
			t.RingStep = rs
			t.TubeStep = ts
			out = append(out, t)
		}
	}
	return out
}

// sweep measures each torus over frames frames, at most workers at a time.
// Results keep the order of cases.
func sweep(ctx context.Context, sc *scene.Scene, cases []mesh.Torus, frames, workers int) ([]result, error) {
	if frames <= 0 {
		frames = 1
	}
	results := make([]result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, t := range cases {
		g.Go(func() error {
			res, err := measure(ctx, sc, t, frames)
			if err != nil {
				return fmt.Errorf("ring=%g tube=%g: %w", t.RingStep, t.TubeStep, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func measure(ctx context.Context, sc *scene.Scene, t mesh.Torus, frames int) (result, error) {
	m, err := mesh.Generate(t)
	if err != nil {
		return result{}, err
	}
	r := render.New(m, sc)
	fb := core.NewFrameBuffer(sc.Viewport.Size())

	res := result{torus: t, samples: m.Len()}
	for f := 0; f < frames; f++ {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		fb.Clear()
		r.Render(fb, sc.Rotation(time.Duration(f)*frameSpacing))
		c := render.Measure(fb)
		res.coverage += c.Fraction(fb)
		res.holes += float64(c.Holes)
	}
	res.coverage /= float64(frames)
	res.holes /= float64(frames)
	return res, nil
}

// rank orders results by fewest holes, then by fewest samples.
func rank(results []result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].holes != results[j].holes {
			return results[i].holes < results[j].holes
		}
		return results[i].samples < results[j].samples
	})
}
