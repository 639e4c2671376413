package app

import "time"

// pauseClock measures animation time that stands still while paused.
type pauseClock struct {
	start    time.Time
	pausedAt time.Time
	paused   bool
}

// elapsed returns the unpaused time since the first call.
func (c *pauseClock) elapsed(now time.Time) time.Duration {
	if c.start.IsZero() {
		c.start = now
	}
	if c.paused {
		return c.pausedAt.Sub(c.start)
	}
	return now.Sub(c.start)
}

// toggle pauses or resumes at now. Resuming shifts the start forward by the
// paused span so the animation continues where it stopped.
func (c *pauseClock) toggle(now time.Time) {
	if c.start.IsZero() {
		c.start = now
	}
	if c.paused {
		c.start = c.start.Add(now.Sub(c.pausedAt))
		c.paused = false
		return
	}
	c.pausedAt = now
	c.paused = true
}
