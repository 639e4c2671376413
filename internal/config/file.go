package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout. Keys absent from the file keep the values
// the struct was filled with before decoding.
type fileConfig struct {
	Torus struct {
		InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius"`
		TubeRadius  float64 `toml:"tube_radius" yaml:"tube_radius"`
		TubeStep    float64 `toml:"tube_step" yaml:"tube_step"`
		RingStep    float64 `toml:"ring_step" yaml:"ring_step"`
	} `toml:"torus" yaml:"torus"`
	Spin struct {
		X float64 `toml:"x" yaml:"x"`
		Y float64 `toml:"y" yaml:"y"`
		Z float64 `toml:"z" yaml:"z"`
	} `toml:"spin" yaml:"spin"`
	View struct {
		Width        int     `toml:"width" yaml:"width"`
		Height       int     `toml:"height" yaml:"height"`
		EyeDistance  float64 `toml:"eye_distance" yaml:"eye_distance"`
		ScreenOffset float64 `toml:"screen_offset" yaml:"screen_offset"`
	} `toml:"view" yaml:"view"`
	Display  string `toml:"display" yaml:"display"`
	FPS      int    `toml:"fps" yaml:"fps"`
	Scale    int    `toml:"scale" yaml:"scale"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

func (f *fileConfig) from(c *Config) {
	f.Torus.InnerRadius = c.Torus.InnerRadius
	f.Torus.TubeRadius = c.Torus.TubeRadius
	f.Torus.TubeStep = c.Torus.TubeStep
	f.Torus.RingStep = c.Torus.RingStep
	f.Spin.X, f.Spin.Y, f.Spin.Z = c.Spin.X, c.Spin.Y, c.Spin.Z
	f.View.Width = c.Viewport.Width
	f.View.Height = c.Viewport.Height
	f.View.EyeDistance = c.Viewport.EyeDistance
	f.View.ScreenOffset = c.Viewport.ScreenOffset
	f.Display = c.Display
	f.FPS = c.FPS
	f.Scale = c.Scale
	f.LogLevel = c.LogLevel
}

func (f *fileConfig) to(c *Config) {
	c.Torus.InnerRadius = f.Torus.InnerRadius
	c.Torus.TubeRadius = f.Torus.TubeRadius
	c.Torus.TubeStep = f.Torus.TubeStep
	c.Torus.RingStep = f.Torus.RingStep
	c.Spin.X, c.Spin.Y, c.Spin.Z = f.Spin.X, f.Spin.Y, f.Spin.Z
	c.Viewport.Width = f.View.Width
	c.Viewport.Height = f.View.Height
	c.Viewport.EyeDistance = f.View.EyeDistance
	c.Viewport.ScreenOffset = f.View.ScreenOffset
	c.Display = f.Display
	c.FPS = f.FPS
	c.Scale = f.Scale
	c.LogLevel = f.LogLevel
}

// ErrUnknownFormat reports a configuration file extension that is neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config file format")

// LoadFile overlays the settings in path onto c. The format follows the
// extension: .toml, or .yaml/.yml.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return c.Decode(filepath.Ext(path), data)
}

// Decode overlays settings encoded in the format named by ext onto c.
func (c *Config) Decode(ext string, data []byte) error {
	var f fileConfig
	f.from(c)
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return fmt.Errorf("decode toml config: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode yaml config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	f.to(c)
	return nil
}
