package termbox

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	"donut/internal/core"
)

func TestShadeIsMonotonic(t *testing.T) {
	prev := termbox.Attribute(0)
	for _, g := range []byte(".,-~:;=!*#@") {
		a := shade(g)
		assert.Greater(t, a, prev, "glyph %q", g)
		prev = a
	}
	assert.Equal(t, termbox.Attribute(4), shade('.'))
	assert.Equal(t, termbox.Attribute(24), shade('@'))
	assert.Equal(t, termbox.ColorDefault, shade(' '))
}

func TestQuitKeys(t *testing.T) {
	assert.True(t, isQuitKey(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}))
	assert.True(t, isQuitKey(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}))
	assert.True(t, isQuitKey(termbox.Event{Type: termbox.EventKey, Ch: 'q'}))
	assert.False(t, isQuitKey(termbox.Event{Type: termbox.EventKey, Ch: 'x'}))
	assert.False(t, isQuitKey(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}))
}

func TestRegistered(t *testing.T) {
	_, ok := core.Displays()[Name]
	assert.True(t, ok)
}

func closeWithin(t *testing.T, d *Display) {
	t.Helper()
	returned := make(chan struct{})
	go func() {
		assert.NoError(t, d.Close())
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
}

func TestCloseAfterQuitKeyReturns(t *testing.T) {
	released := false
	d := &Display{
		done:      make(chan struct{}),
		interrupt: func() { select {} },
		release:   func() { released = true },
	}
	close(d.done)

	closeWithin(t, d)
	assert.True(t, released, "terminal is restored")
}

func TestCloseInterruptsRunningPoller(t *testing.T) {
	interrupted := 0
	d := &Display{done: make(chan struct{}), release: func() {}}
	d.interrupt = func() {
		interrupted++
		close(d.done)
	}

	closeWithin(t, d)
	assert.Equal(t, 1, interrupted)
}

func TestClosePollerExitingDuringInterrupt(t *testing.T) {
	d := &Display{done: make(chan struct{}), release: func() {}}
	// The watcher stops on its own while Close is sending the interrupt,
	// which then never gets a receiver.
	d.interrupt = func() {
		close(d.done)
		select {}
	}

	closeWithin(t, d)
}
