package core

import (
	"context"
	"time"
)

// Clock is the wall-clock source the animation is timed against.
type Clock interface {
	Now() time.Time
	// SleepUntil blocks until t or until ctx is done.
	SleepUntil(ctx context.Context, t time.Time) error
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// SleepUntil blocks on a timer until t.
func (SystemClock) SleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pacer holds a loop to a fixed frame rate. A late frame is never caught up:
// the next frame starts as soon as the slow one finishes.
type Pacer struct {
	fps   int
	step  time.Duration
	clock Clock
}

// NewPacer constructs a Pacer targeting the given frames per second.
func NewPacer(fps int, clock Clock) *Pacer {
	if clock == nil {
		clock = SystemClock{}
	}
	p := &Pacer{clock: clock}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the frame rate. The period is rounded up to whole
// nanoseconds, so a frame never lasts less than 1/fps.
func (p *Pacer) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	p.fps = fps
	n := time.Duration(fps)
	p.step = (time.Second + n - 1) / n
}

// FPS returns the target frame rate.
func (p *Pacer) FPS() int { return p.fps }

// Step returns the target frame period.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until at least one frame period has passed since start and
// returns the actual time elapsed since start.
func (p *Pacer) Wait(ctx context.Context, start time.Time) (time.Duration, error) {
	if err := p.clock.SleepUntil(ctx, start.Add(p.step)); err != nil {
		return p.clock.Now().Sub(start), err
	}
	return p.clock.Now().Sub(start), nil
}
