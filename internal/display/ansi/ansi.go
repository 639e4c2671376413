// Package ansi prints frames to a plain terminal, clearing the screen before
// each one.
package ansi

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/muesli/termenv"

	"donut/internal/core"
)

// Name is the registry key of this display.
const Name = "ansi"

// Display writes each frame row by row after a screen clear, followed by the
// measured frame rate.
type Display struct {
	w   *bufio.Writer
	out *termenv.Output
}

// New wraps w. The cursor is hidden until Close.
func New(w io.Writer) *Display {
	if w == nil {
		w = os.Stdout
	}
	bw := bufio.NewWriter(w)
	d := &Display{w: bw, out: termenv.NewOutput(bw)}
	d.out.HideCursor()
	return d
}

// Name returns the registry key.
func (d *Display) Name() string { return Name }

// Present clears the screen and prints the frame.
func (d *Display) Present(f core.Frame) error {
	d.out.ClearScreen()
	if _, err := d.w.WriteString("\n\n\n"); err != nil {
		return err
	}
	fb := f.Buffer
	for y := 0; y < fb.H; y++ {
		if _, err := d.w.Write(fb.Row(y)); err != nil {
			return err
		}
		if err := d.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if f.FPS > 0 {
		if _, err := d.w.WriteString(strconv.FormatFloat(f.FPS, 'f', 1, 64) + " fps\n"); err != nil {
			return err
		}
	}
	return d.w.Flush()
}

// Close restores the cursor.
func (d *Display) Close() error {
	d.out.ShowCursor()
	return d.w.Flush()
}

func init() {
	core.RegisterDisplay(Name, func(opts core.DisplayOptions) (core.Display, error) {
		return New(opts.Out), nil
	})
}
