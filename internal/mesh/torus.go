// Package mesh generates the static point cloud of a torus surface.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"donut/internal/linalg"
	"donut/internal/transform"
)

// ErrInvalidTorus reports torus parameters that cannot produce a mesh.
var ErrInvalidTorus = errors.New("invalid torus")

// Torus describes the sampled surface. InnerRadius is the distance from the
// torus centre to the inner edge of the tube.
type Torus struct {
	InnerRadius float64
	TubeRadius  float64
	RingStep    float64
	TubeStep    float64
}

// DefaultTorus returns the standard donut.
func DefaultTorus() Torus {
	return Torus{InnerRadius: 10, TubeRadius: 5, RingStep: 0.08, TubeStep: 0.3}
}

// Offset is the distance from the torus centre to the tube centreline.
func (t Torus) Offset() float64 { return t.InnerRadius + t.TubeRadius }

// Validate reports every parameter that would make generation loop forever or
// degenerate.
func (t Torus) Validate() error {
	var errs []error
	if !(t.InnerRadius > 0) {
		errs = append(errs, fmt.Errorf("%w: inner radius %v must be positive", ErrInvalidTorus, t.InnerRadius))
	}
	if !(t.TubeRadius > 0) {
		errs = append(errs, fmt.Errorf("%w: tube radius %v must be positive", ErrInvalidTorus, t.TubeRadius))
	}
	if !validStep(t.RingStep) {
		errs = append(errs, fmt.Errorf("%w: ring step %v must be in (0, 2π)", ErrInvalidTorus, t.RingStep))
	}
	if !validStep(t.TubeStep) {
		errs = append(errs, fmt.Errorf("%w: tube step %v must be in (0, 2π)", ErrInvalidTorus, t.TubeStep))
	}
	return errors.Join(errs...)
}

func validStep(step float64) bool {
	return step > 0 && step < 2*math.Pi
}

// Steps returns how many angles a sweep of 2π takes with the given increment.
// The final angle is a shorter sub-step when step does not divide 2π.
func Steps(step float64) int {
	return int(math.Ceil(2 * math.Pi / step))
}

// SampleCount returns the number of surface samples for the given steps.
func SampleCount(ringStep, tubeStep float64) int {
	return Steps(ringStep) * Steps(tubeStep)
}

// Mesh is an immutable list of surface samples. Position i is always paired
// with normal i.
type Mesh struct {
	positions []linalg.Vec3
	normals   []linalg.Vec3
}

// Len returns the number of samples.
func (m *Mesh) Len() int { return len(m.positions) }

// Position returns the object-space position of sample i.
func (m *Mesh) Position(i int) linalg.Vec3 { return m.positions[i] }

// Normal returns the unit outward normal of sample i.
func (m *Mesh) Normal(i int) linalg.Vec3 { return m.normals[i] }

// Generate samples the torus ring-major, tube-minor into preallocated arrays.
func Generate(t Torus) (*Mesh, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	rings := Steps(t.RingStep)
	tubes := Steps(t.TubeStep)
	m := &Mesh{
		positions: make([]linalg.Vec3, rings*tubes),
		normals:   make([]linalg.Vec3, rings*tubes),
	}

	base := linalg.V3(t.InnerRadius, 0, 0)
	baseNormal := linalg.V3(-1, 0, 0)
	offset := t.Offset()

	i := 0
	for r := 0; r < rings; r++ {
		ring := float64(r) * t.RingStep
		for s := 0; s < tubes; s++ {
			place := transform.Placement(ring, float64(s)*t.TubeStep, offset)
			m.positions[i] = place.TransformPoint(base)
			m.normals[i] = linalg.Unit(place.TransformDirection(baseNormal))
			i++
		}
	}
	return m, nil
}
