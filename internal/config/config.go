// Package config assembles the run configuration from defaults, an optional
// TOML or YAML file, command-line flags and the positional parameters.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"

	"donut/internal/core"
	"donut/internal/mesh"
	"donut/internal/scene"
)

// ErrTooManyArgs reports more positional parameters than are defined.
var ErrTooManyArgs = errors.New("too many positional arguments")

// Config represents everything needed to start an animation.
type Config struct {
	Torus    mesh.Torus
	Viewport scene.Viewport
	Spin     scene.Spin

	Display  string
	FPS      int
	Scale    int
	File     string
	LogLevel string
}

// NewConfig returns a Config populated with the standard donut.
func NewConfig() *Config {
	return &Config{
		Torus:    mesh.DefaultTorus(),
		Viewport: scene.DefaultViewport(),
		Spin:     scene.DefaultSpin(),
		Display:  "ansi",
		FPS:      60,
		Scale:    8,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Display, "display", c.Display, "display backend")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.StringVar(&c.File, "config", c.File, "TOML or YAML configuration file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Usage describes the positional parameters.
const Usage = "[innerRadius tubeRadius tubeStep ringStep speedX speedY speedZ screenOffset eyeDistance width height]"

// positional returns pointers to the positional parameters in order. Width
// and height are handled separately since they are integers.
func (c *Config) positional() []*float64 {
	return []*float64{
		&c.Torus.InnerRadius,
		&c.Torus.TubeRadius,
		&c.Torus.TubeStep,
		&c.Torus.RingStep,
		&c.Spin.X,
		&c.Spin.Y,
		&c.Spin.Z,
		&c.Viewport.ScreenOffset,
		&c.Viewport.EyeDistance,
		nil,
		nil,
	}
}

// ApplyArgs overrides the leading positional parameters. Missing trailing
// values keep their current setting.
func (c *Config) ApplyArgs(args []string) error {
	targets := c.positional()
	if len(args) > len(targets) {
		return fmt.Errorf("%w: got %d, want at most %d", ErrTooManyArgs, len(args), len(targets))
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("argument %d (%q): %w", i+1, arg, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("argument %d (%q): must be finite", i+1, arg)
		}
		switch i {
		case 9:
			c.Viewport.Width = int(v)
		case 10:
			c.Viewport.Height = int(v)
		default:
			*targets[i] = v
		}
	}
	return nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Torus.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Viewport.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load builds a Config from defaults, the file named by -config, the flags
// and the positional arguments, in increasing order of precedence.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.File != "" {
		// The file must not override flags given explicitly, so remember them
		// and set them again afterwards.
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := c.LoadFile(c.File); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, err
			}
		}
	}

	if err := c.ApplyArgs(fs.Args()); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Scene builds the validated scene described by the configuration.
func (c *Config) Scene() (*scene.Scene, error) {
	return scene.New(c.Viewport, c.Spin)
}

// Parameters snapshots the configuration for display.
func (c *Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Torus",
			Params: []core.Parameter{
				core.FloatParam("inner_radius", "Inner radius", c.Torus.InnerRadius),
				core.FloatParam("tube_radius", "Tube radius", c.Torus.TubeRadius),
				core.FloatParam("tube_step", "Tube step", c.Torus.TubeStep),
				core.FloatParam("ring_step", "Ring step", c.Torus.RingStep),
				core.IntParam("samples", "Samples", mesh.SampleCount(c.Torus.RingStep, c.Torus.TubeStep)),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.FloatParam("spin_x", "Spin X", c.Spin.X),
				core.FloatParam("spin_y", "Spin Y", c.Spin.Y),
				core.FloatParam("spin_z", "Spin Z", c.Spin.Z),
				core.IntParam("fps", "Target FPS", c.FPS),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				core.IntParam("width", "Width", c.Viewport.Width),
				core.IntParam("height", "Height", c.Viewport.Height),
				core.FloatParam("eye_distance", "Eye distance", c.Viewport.EyeDistance),
				core.FloatParam("screen_offset", "Screen offset", c.Viewport.ScreenOffset),
				core.StringParam("display", "Display", c.Display),
			},
		},
	}}
}
