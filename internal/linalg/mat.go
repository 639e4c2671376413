package linalg

// Mat3 is a row-major 3x3 matrix; m[row][col].
type Mat3 [3][3]float64

// Mat4 is a row-major 4x4 matrix; m[row][col].
type Mat4 [4][4]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MulVec returns m · v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m · b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*b[0][c] + m[r][1]*b[1][c] + m[r][2]*b[2][c]
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Mul returns m · b.
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][0]*b[0][c] + m[r][1]*b[1][c] + m[r][2]*b[2][c] + m[r][3]*b[3][c]
		}
	}
	return out
}

// MulVec4 returns m · v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// TransformPoint applies m to v as a point (W = 1).
func (m Mat4) TransformPoint(v Vec3) Vec3 { return m.MulVec4(Point(v)).Vec3() }

// TransformDirection applies m to v as a direction (W = 0).
func (m Mat4) TransformDirection(v Vec3) Vec3 { return m.MulVec4(Direction(v)).Vec3() }

// Homogeneous embeds a linear map in a 4x4 matrix with no translation and an
// identity last row and column.
func Homogeneous(m Mat3) Mat4 {
	return Mat4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// Linear returns the upper-left 3x3 block of m.
func (m Mat4) Linear() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}
