// Package scene holds the camera geometry and animation state of the
// spinning torus.
package scene

import (
	"errors"
	"fmt"
	"time"

	"donut/internal/core"
	"donut/internal/linalg"
	"donut/internal/transform"
)

// ErrInvalidViewport reports viewport geometry that would divide by zero or
// allocate an empty grid.
var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the projection geometry. The eye sits on the view axis at
// ScreenOffset - EyeDistance and looks towards +z, so nearer points have
// smaller z.
type Viewport struct {
	Width        int
	Height       int
	EyeDistance  float64
	ScreenOffset float64
}

// DefaultViewport returns the standard 50x50 view.
func DefaultViewport() Viewport {
	return Viewport{Width: 50, Height: 50, EyeDistance: 100, ScreenOffset: -20}
}

// Size returns the pixel grid dimensions.
func (v Viewport) Size() core.Size { return core.Size{W: v.Width, H: v.Height} }

// EyeZ is the z coordinate of the eye in view space.
func (v Viewport) EyeZ() float64 { return v.ScreenOffset - v.EyeDistance }

// Validate reports every unusable viewport field.
func (v Viewport) Validate() error {
	var errs []error
	if v.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: width %d must be positive", ErrInvalidViewport, v.Width))
	}
	if v.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: height %d must be positive", ErrInvalidViewport, v.Height))
	}
	if !(v.EyeDistance > 0) {
		errs = append(errs, fmt.Errorf("%w: eye distance %v must be positive", ErrInvalidViewport, v.EyeDistance))
	}
	return errors.Join(errs...)
}

// Spin holds the angular velocity about each axis in radians per second.
type Spin struct {
	X, Y, Z float64
}

// DefaultSpin returns the standard tumbling motion.
func DefaultSpin() Spin { return Spin{X: 3, Y: 1, Z: 2} }

// Scene combines the viewport, the animation speeds and the light.
type Scene struct {
	Viewport Viewport
	Spin     Spin
	// Light is the unit direction the surface is lit from.
	Light linalg.Vec3
}

// DefaultLight is the direction the default light shines from.
func DefaultLight() linalg.Vec3 { return linalg.V3(0, -1, 0) }

// New builds a validated Scene with the default light.
func New(v Viewport, s Spin) (*Scene, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Scene{Viewport: v, Spin: s, Light: DefaultLight()}, nil
}

// Angles returns the rotation about each axis after elapsed time. Angles are
// recomputed from elapsed every time, so there is no accumulated drift.
func (s *Scene) Angles(elapsed time.Duration) (x, y, z float64) {
	t := elapsed.Seconds()
	return t * s.Spin.X, t * s.Spin.Y, t * s.Spin.Z
}

// Rotation returns the object-to-view rotation after elapsed time.
func (s *Scene) Rotation(elapsed time.Duration) linalg.Mat3 {
	return transform.Rotation(s.Angles(elapsed))
}
