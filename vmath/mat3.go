package vmath

import "math"

// Mat3 is a row-major 3x3 homogeneous matrix for 2D affine transforms
// Transforms compose right-to-left: m.Translate(...).Rotate(...) applies the
// rotation to a point first
type Mat3 [3][3]float64

// Identity returns the identity matrix
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns a*b
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return r
}

// Translate post-multiplies a translation by (x, y)
func (a Mat3) Translate(x, y float64) Mat3 {
	t := Identity()
	t[0][2] = x
	t[1][2] = y
	return a.Mul(t)
}

// Scale post-multiplies a per-axis scale
func (a Mat3) Scale(x, y float64) Mat3 {
	s := Identity()
	s[0][0] = x
	s[1][1] = y
	return a.Mul(s)
}

// Rotate post-multiplies a counter-clockwise rotation by angle radians
func (a Mat3) Rotate(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)
	r := Identity()
	r[0][0] = cos
	r[0][1] = -sin
	r[1][0] = sin
	r[1][1] = cos
	return a.Mul(r)
}

// Apply transforms a point, implicit w=1
func (a Mat3) Apply(v Vec2F) Vec2F {
	return Vec2F{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2],
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2],
	}
}
