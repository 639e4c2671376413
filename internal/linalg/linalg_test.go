package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func TestVectorOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 5, 0.5)

	assert.InDelta(t, 1*-4+2*5+3*0.5, Dot(a, b), tol)
	assert.Equal(t, V3(-3, 7, 3.5), Add(a, b))
	assert.Equal(t, V3(5, -3, 2.5), Sub(a, b))
	assert.Equal(t, V3(2, 4, 6), Scale(2, a))
	assert.InDelta(t, math.Sqrt(14), Norm(a), tol)
	assert.InDelta(t, 1, Norm(Unit(a)), tol)
	assert.Equal(t, Vec3{}, Unit(Vec3{}))
}

func TestMat3MulVec(t *testing.T) {
	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	assert.Equal(t, V3(14, 32, 50), m.MulVec(V3(1, 2, 3)))
	assert.Equal(t, V3(1, 2, 3), Identity3().MulVec(V3(1, 2, 3)))
}

func TestMat3MulAndTranspose(t *testing.T) {
	a := Mat3{
		{1, 2, 0},
		{0, 1, 0},
		{3, 0, 1},
	}
	b := Mat3{
		{2, 0, 0},
		{1, 1, 0},
		{0, 0, 4},
	}
	want := Mat3{
		{4, 2, 0},
		{1, 1, 0},
		{6, 0, 4},
	}
	assert.Equal(t, want, a.Mul(b))
	assert.Equal(t, a, a.Mul(Identity3()))
	assert.Equal(t, a, a.Transpose().Transpose())
	assert.Equal(t, 3.0, a.Transpose()[0][2])

	// (a·b)·v == a·(b·v)
	v := V3(0.5, -1, 2)
	assert.Equal(t, a.Mul(b).MulVec(v), a.MulVec(b.MulVec(v)))
}

func TestHomogeneousRoundTripIsExact(t *testing.T) {
	m := Mat3{
		{0.1, 0.2, 0.3},
		{-0.4, 0.5, -0.6},
		{0.7, -0.8, 0.9},
	}
	h := Homogeneous(m)
	assert.Equal(t, m, h.Linear())
	for i := 0; i < 3; i++ {
		assert.Zero(t, h[i][3], "translation column must be zero")
		assert.Zero(t, h[3][i], "last row must be zero")
	}
	assert.Equal(t, 1.0, h[3][3])
	assert.Equal(t, Identity4(), Homogeneous(Identity3()))
}

func TestMat4PointAndDirection(t *testing.T) {
	tr := Identity4()
	tr[0][3], tr[1][3], tr[2][3] = 10, -2, 3

	p := V3(1, 1, 1)
	assert.Equal(t, V3(11, -1, 4), tr.TransformPoint(p))
	assert.Equal(t, p, tr.TransformDirection(p), "directions ignore translation")

	assert.Equal(t, Vec4{1, 2, 3, 1}, Point(V3(1, 2, 3)))
	assert.Equal(t, Vec4{1, 2, 3, 0}, Direction(V3(1, 2, 3)))
	assert.Equal(t, V3(1, 2, 3), Vec4{1, 2, 3, 7}.Vec3())
}

func TestMat4Mul(t *testing.T) {
	a := Identity4()
	a[0][3] = 5
	b := Identity4()
	b[0][3] = -2
	got := a.Mul(b)
	assert.Equal(t, 3.0, got[0][3])
	assert.Equal(t, Identity4(), Identity4().Mul(Identity4()))
}
