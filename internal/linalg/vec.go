// Package linalg holds the small fixed-size vector and matrix types used by
// the torus pipeline. Three-component vectors are gonum's r3.Vec; the
// homogeneous four-component types and the matrices live here.
package linalg

import "gonum.org/v1/gonum/spatial/r3"

// Vec3 is a point or direction in 3D space.
type Vec3 = r3.Vec

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Dot returns the dot product a · b.
func Dot(a, b Vec3) float64 { return r3.Dot(a, b) }

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 { return r3.Norm(v) }

// Unit returns v scaled to unit length. The zero vector is returned as is.
func Unit(v Vec3) Vec3 {
	if r3.Norm2(v) == 0 {
		return v
	}
	return r3.Unit(v)
}

// Add returns a + b.
func Add(a, b Vec3) Vec3 { return r3.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 { return r3.Sub(a, b) }

// Scale returns v * s.
func Scale(s float64, v Vec3) Vec3 { return r3.Scale(s, v) }

// Vec4 is a homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point lifts v to homogeneous coordinates with W = 1, so translations apply.
func Point(v Vec3) Vec4 { return Vec4{v.X, v.Y, v.Z, 1} }

// Direction lifts v to homogeneous coordinates with W = 0, so translations
// are ignored.
func Direction(v Vec3) Vec4 { return Vec4{v.X, v.Y, v.Z, 0} }

// Vec3 drops the W component without a perspective divide.
func (v Vec4) Vec3() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }
