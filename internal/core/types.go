package core

import (
	"context"
	"io"
	"log/slog"
	"sort"
)

// Size describes the dimensions of a character grid.
type Size struct {
	W int
	H int
}

// Frame is what a Display receives each tick.
type Frame struct {
	Buffer *FrameBuffer
	// FPS is the rate measured over the previous tick, or 0 on the first.
	FPS float64
}

// Display presents frames to the user.
type Display interface {
	Name() string
	Present(f Frame) error
	Close() error
}

// DisplayOptions carries what a display backend may need from the host.
type DisplayOptions struct {
	Out    io.Writer
	Logger *slog.Logger
	// Quit lets interactive displays end the animation.
	Quit context.CancelFunc
}

// DisplayFactory constructs a Display.
type DisplayFactory func(opts DisplayOptions) (Display, error)

var displays = map[string]DisplayFactory{}

// RegisterDisplay adds a display backend under the provided name.
func RegisterDisplay(name string, f DisplayFactory) {
	if name == "" || f == nil {
		return
	}
	displays[name] = f
}

// Displays exposes the registry of available display backends.
func Displays() map[string]DisplayFactory {
	return displays
}

// DisplayNames returns the registered backend names in sorted order.
func DisplayNames() []string {
	names := make([]string, 0, len(displays))
	for name := range displays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
