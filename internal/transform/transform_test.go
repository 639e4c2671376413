package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"donut/internal/linalg"
)

const tol = 1e-9

func assertMat3InDelta(t *testing.T, want, got linalg.Mat3) {
	t.Helper()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, want[r][c], got[r][c], tol, "element [%d][%d]", r, c)
		}
	}
}

func assertVecInDelta(t *testing.T, want, got linalg.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

func TestAxisRotationsAreOrthonormal(t *testing.T) {
	builders := map[string]func(c, s float64) linalg.Mat3{
		"x": RotateX,
		"y": RotateY,
		"z": RotateZ,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			for _, angle := range []float64{0, 0.3, 1, math.Pi / 2, 2.5, math.Pi, -4.2, 100} {
				s, c := math.Sincos(angle)
				r := build(c, s)
				assertMat3InDelta(t, linalg.Identity3(), r.Transpose().Mul(r))
			}
		})
	}
}

func TestComposedRotationIsOrthonormal(t *testing.T) {
	for _, a := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-0.7, 5.1, 0.01}, {30, 10, 20}} {
		r := Rotation(a[0], a[1], a[2])
		assertMat3InDelta(t, linalg.Identity3(), r.Transpose().Mul(r))
	}
}

func TestQuarterTurns(t *testing.T) {
	x := linalg.V3(1, 0, 0)
	y := linalg.V3(0, 1, 0)
	z := linalg.V3(0, 0, 1)

	assertVecInDelta(t, z, RotateX(0, 1).MulVec(y))
	assertVecInDelta(t, x, RotateY(0, 1).MulVec(z))
	assertVecInDelta(t, y, RotateZ(0, 1).MulVec(x))
}

func TestRotationAppliesXFirst(t *testing.T) {
	ax, ay, az := 0.4, -1.1, 2.3
	p := linalg.V3(1, 2, 3)

	sx, cx := math.Sincos(ax)
	sy, cy := math.Sincos(ay)
	sz, cz := math.Sincos(az)
	want := RotateZ(cz, sz).MulVec(RotateY(cy, sy).MulVec(RotateX(cx, sx).MulVec(p)))

	assertVecInDelta(t, want, Rotation(ax, ay, az).MulVec(p))
}

func TestTranslate(t *testing.T) {
	m := Translate(linalg.V3(1, -2, 3))
	assert.Equal(t, linalg.V3(2, -1, 4), m.TransformPoint(linalg.V3(1, 1, 1)))
	assert.Equal(t, linalg.V3(1, 1, 1), m.TransformDirection(linalg.V3(1, 1, 1)))
	assert.Equal(t, linalg.Identity3(), m.Linear())
}

func TestPlacement(t *testing.T) {
	const inner, tube = 10.0, 5.0
	offset := inner + tube
	base := linalg.V3(inner, 0, 0)

	t.Run("zero angles keep the base point", func(t *testing.T) {
		assertVecInDelta(t, base, Placement(0, 0, offset).TransformPoint(base))
	})

	t.Run("half tube turn reaches the outer edge", func(t *testing.T) {
		got := Placement(0, math.Pi, offset).TransformPoint(base)
		assertVecInDelta(t, linalg.V3(offset+tube, 0, 0), got)
	})

	t.Run("quarter tube turn lifts out of the ring plane", func(t *testing.T) {
		// RotateY maps (-tube,0,0) to (0,0,tube).
		got := Placement(0, math.Pi/2, offset).TransformPoint(base)
		assertVecInDelta(t, linalg.V3(offset, 0, tube), got)
	})

	t.Run("quarter ring turn sweeps onto the Y axis", func(t *testing.T) {
		got := Placement(math.Pi/2, 0, offset).TransformPoint(base)
		assertVecInDelta(t, linalg.V3(0, inner, 0), got)
	})

	t.Run("normals only see the linear part", func(t *testing.T) {
		m := Placement(0.7, 1.9, offset)
		n := linalg.V3(-1, 0, 0)
		assertVecInDelta(t, m.Linear().MulVec(n), m.TransformDirection(n))
		assert.InDelta(t, 1, linalg.Norm(m.TransformDirection(n)), tol)
	})
}
