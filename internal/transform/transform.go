// Package transform builds the rotation, translation and torus placement
// matrices used to generate and animate the mesh.
package transform

import (
	"math"

	"donut/internal/linalg"
)

// RotateX returns the rotation about the X axis for an angle whose cosine and
// sine have already been computed.
func RotateX(cos, sin float64) linalg.Mat3 {
	return linalg.Mat3{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}
}

// RotateY returns the rotation about the Y axis.
func RotateY(cos, sin float64) linalg.Mat3 {
	return linalg.Mat3{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	}
}

// RotateZ returns the rotation about the Z axis.
func RotateZ(cos, sin float64) linalg.Mat3 {
	return linalg.Mat3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Rotation composes the per-axis rotations as Z·Y·X, so X is applied to a
// point first.
func Rotation(x, y, z float64) linalg.Mat3 {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)
	return RotateZ(cz, sz).Mul(RotateY(cy, sy)).Mul(RotateX(cx, sx))
}

// Translate returns the homogeneous translation by v.
func Translate(v linalg.Vec3) linalg.Mat4 {
	m := linalg.Identity4()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// Placement moves a point of the base cross-section onto the torus surface.
// The point is shifted into the tube-centre frame, swept around the tube's
// local Y axis, shifted back out to the ring radius and finally swept around
// the ring's Z axis:
//
//	RotateZ(ring) · Translate(+offset,0,0) · RotateY(tube) · Translate(-offset,0,0)
func Placement(ringAngle, tubeAngle, offset float64) linalg.Mat4 {
	sr, cr := math.Sincos(ringAngle)
	st, ct := math.Sincos(tubeAngle)
	return linalg.Homogeneous(RotateZ(cr, sr)).
		Mul(Translate(linalg.V3(offset, 0, 0))).
		Mul(linalg.Homogeneous(RotateY(ct, st))).
		Mul(Translate(linalg.V3(-offset, 0, 0)))
}
