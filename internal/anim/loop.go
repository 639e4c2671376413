// Package anim drives the render pipeline at a fixed frame rate.
package anim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"donut/internal/core"
	"donut/internal/render"
)

// Config wires a Loop to its collaborators.
type Config struct {
	Renderer *render.Renderer
	Display  core.Display
	Clock    core.Clock
	FPS      int
	Logger   *slog.Logger
	// StatsEvery is how often render statistics are logged at debug level.
	// Zero disables them.
	StatsEvery time.Duration
}

// Loop owns the frame buffer and runs tick after tick until cancelled.
type Loop struct {
	renderer *render.Renderer
	display  core.Display
	clock    core.Clock
	pacer    *core.Pacer
	log      *slog.Logger
	fb       *core.FrameBuffer

	start      time.Time
	fps        float64
	frames     int
	statsEvery time.Duration
	lastStats  time.Time
}

// New constructs a Loop. The clock starts on the first tick.
func New(cfg Config) (*Loop, error) {
	if cfg.Renderer == nil {
		return nil, errors.New("anim: renderer is required")
	}
	if cfg.Display == nil {
		return nil, errors.New("anim: display is required")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		renderer:   cfg.Renderer,
		display:    cfg.Display,
		clock:      clock,
		pacer:      core.NewPacer(cfg.FPS, clock),
		log:        logger,
		fb:         core.NewFrameBuffer(cfg.Renderer.Scene().Viewport.Size()),
		statsEvery: cfg.StatsEvery,
	}, nil
}

// Buffer exposes the frame buffer the loop renders into.
func (l *Loop) Buffer() *core.FrameBuffer { return l.fb }

// Frames returns how many ticks have completed.
func (l *Loop) Frames() int { return l.frames }

// FPS returns the rate measured over the last completed tick.
func (l *Loop) FPS() float64 { return l.fps }

// Run ticks until ctx is cancelled. Cancellation is a normal exit and returns
// nil; display failures are returned.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("animation started", "samples", l.renderer.Mesh().Len(), "fps", l.pacer.FPS())
	for {
		if err := l.Tick(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.log.Info("animation stopped", "frames", l.frames)
				return nil
			}
			return err
		}
	}
}

// Tick renders and presents one frame, then waits out the rest of the frame
// period.
func (l *Loop) Tick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := l.clock.Now()
	if l.start.IsZero() {
		l.start = now
		l.lastStats = now
	}
	elapsed := now.Sub(l.start)

	rot := l.renderer.Scene().Rotation(elapsed)
	l.fb.Clear()
	st := l.renderer.Render(l.fb, rot)

	if err := l.display.Present(core.Frame{Buffer: l.fb, FPS: l.fps}); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}

	delta, err := l.pacer.Wait(ctx, now)
	if err != nil {
		return err
	}
	if delta > 0 {
		l.fps = float64(time.Second) / float64(delta)
	}
	l.frames++

	if l.statsEvery > 0 && now.Sub(l.lastStats) >= l.statsEvery {
		l.lastStats = now
		l.log.Debug("frame",
			"n", l.frames,
			"elapsed", elapsed,
			"fps", l.fps,
			"drawn", st.Drawn,
			"occluded", st.Occluded,
			"clipped", st.Clipped,
			"culled", st.Culled,
		)
	}
	return nil
}
