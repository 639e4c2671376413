// Package termbox draws frames with termbox in grayscale mode. Esc, q or
// Ctrl+C end the animation.
package termbox

import (
	"fmt"
	"log/slog"

	"github.com/nsf/termbox-go"

	"donut/internal/core"
	"donut/internal/render"
)

// Name is the registry key of this display.
const Name = "termbox"

// Display owns the termbox screen for the lifetime of the animation.
type Display struct {
	log  *slog.Logger
	quit func()
	done chan struct{}

	interrupt func()
	release   func()
}

// New initialises termbox and starts watching for quit keys.
func New(quit func(), logger *slog.Logger) (*Display, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetOutputMode(termbox.OutputGrayscale)
	termbox.HideCursor()
	if logger == nil {
		logger = slog.Default()
	}
	d := &Display{
		log:       logger,
		quit:      quit,
		done:      make(chan struct{}),
		interrupt: termbox.Interrupt,
		release:   termbox.Close,
	}
	go d.poll()
	return d, nil
}

func (d *Display) poll() {
	defer close(d.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			d.log.Warn("termbox event", "err", ev.Err)
			return
		case termbox.EventKey:
			if isQuitKey(ev) {
				d.log.Debug("quit key pressed")
				if d.quit != nil {
					d.quit()
				}
				return
			}
		}
	}
}

func isQuitKey(ev termbox.Event) bool {
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'
}

// shade maps a glyph to a grayscale attribute, brighter for denser glyphs.
func shade(g byte) termbox.Attribute {
	level := render.LevelOf(g)
	if level < 0 {
		return termbox.ColorDefault
	}
	return termbox.Attribute(4 + level*20/(render.Levels-1))
}

// Name returns the registry key.
func (d *Display) Name() string { return Name }

// Present draws the frame and the measured frame rate beneath it.
func (d *Display) Present(f core.Frame) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	fb := f.Buffer
	for y := 0; y < fb.H; y++ {
		for x, g := range fb.Row(y) {
			termbox.SetCell(x, y, rune(g), shade(g), termbox.ColorDefault)
		}
	}
	if f.FPS > 0 {
		for i, r := range fmt.Sprintf("%.1f fps", f.FPS) {
			termbox.SetCell(i, fb.H, r, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
	return termbox.Flush()
}

// Close stops the key watcher and restores the terminal.
func (d *Display) Close() error {
	stopPoller(d.done, d.interrupt)
	if d.release != nil {
		d.release()
	}
	return nil
}

// stopPoller interrupts the key watcher unless it has already returned.
// interrupt blocks until a pending PollEvent receives it, so it is only
// waited on while the watcher may still be polling.
func stopPoller(done <-chan struct{}, interrupt func()) {
	select {
	case <-done:
		return
	default:
	}
	if interrupt == nil {
		<-done
		return
	}
	sent := make(chan struct{})
	go func() {
		interrupt()
		close(sent)
	}()
	select {
	case <-done:
	case <-sent:
		<-done
	}
}

func init() {
	core.RegisterDisplay(Name, func(opts core.DisplayOptions) (core.Display, error) {
		return New(opts.Quit, opts.Logger)
	})
}
