package math3d

import (
	"math"

	"math3d-core/scalar"
)

// Matrix is a 4x4 transformation matrix as sixteen flat floats. Translation
// lives in indices 12-14 and the homogeneous column in 3/7/11/15; points
// transform as row vectors, so a.Multiply(b) applies a first, then b.
// Transform functions never mutate their matrix operand.
type Matrix [16]float64

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IdentityToRef resets result to the identity.
func IdentityToRef(result *Matrix) {
	*result = MatrixIdentity()
}

// MatrixFromArray reads sixteen floats from buf starting at offset, in flat
// storage order.
func MatrixFromArray(buf []float64, offset int) Matrix {
	var m Matrix
	copy(m[:], buf[offset:offset+16])
	return m
}

// ToArray writes the sixteen floats into buf at offset, preserving storage
// order.
func (m Matrix) ToArray(buf []float64, offset int) {
	copy(buf[offset:offset+16], m[:])
}

// Equals reports exact element equality.
func (m Matrix) Equals(other Matrix) bool {
	return m == other
}

// EqualsWithEpsilon reports per-element equality within epsilon.
func (m Matrix) EqualsWithEpsilon(other Matrix, epsilon float64) bool {
	for i := range m {
		if !scalar.WithinEpsilon(m[i], other[i], epsilon) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is the identity within a tight tolerance.
func (m Matrix) IsIdentity() bool {
	return m.EqualsWithEpsilon(MatrixIdentity(), 1e-8)
}

// GetTranslation returns the translation stored in indices 12-14.
func (m Matrix) GetTranslation() Vector3 {
	return Vector3{X: m[12], Y: m[13], Z: m[14]}
}

// GetTranslationToRef writes the translation into result.
func (m Matrix) GetTranslationToRef(result *Vector3) {
	result.X = m[12]
	result.Y = m[13]
	result.Z = m[14]
}

// Multiply returns m * other, the transform m followed by other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	m.MultiplyToRef(other, &result)
	return result
}

// MultiplyToRef writes m * other into result.
func (m Matrix) MultiplyToRef(other Matrix, result *Matrix) {
	for row := 0; row < 4; row++ {
		r := row * 4
		result[r] = m[r]*other[0] + m[r+1]*other[4] + m[r+2]*other[8] + m[r+3]*other[12]
		result[r+1] = m[r]*other[1] + m[r+1]*other[5] + m[r+2]*other[9] + m[r+3]*other[13]
		result[r+2] = m[r]*other[2] + m[r+1]*other[6] + m[r+2]*other[10] + m[r+3]*other[14]
		result[r+3] = m[r]*other[3] + m[r+1]*other[7] + m[r+2]*other[11] + m[r+3]*other[15]
	}
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col*4+row] = m[row*4+col]
		}
	}
	return result
}

// Determinant returns the determinant of m.
func (m Matrix) Determinant() float64 {
	temp1 := m[10]*m[15] - m[11]*m[14]
	temp2 := m[9]*m[15] - m[11]*m[13]
	temp3 := m[9]*m[14] - m[10]*m[13]
	temp4 := m[8]*m[15] - m[11]*m[12]
	temp5 := m[8]*m[14] - m[10]*m[12]
	temp6 := m[8]*m[13] - m[9]*m[12]

	return m[0]*(m[5]*temp1-m[6]*temp2+m[7]*temp3) -
		m[1]*(m[4]*temp1-m[6]*temp4+m[7]*temp5) +
		m[2]*(m[4]*temp2-m[5]*temp4+m[7]*temp6) -
		m[3]*(m[4]*temp3-m[5]*temp5+m[6]*temp6)
}

// Invert returns the inverse of m. A singular matrix is returned unchanged
// rather than raising an error.
func (m Matrix) Invert() Matrix {
	var result Matrix
	m.InvertToRef(&result)
	return result
}

// InvertToRef writes the inverse of m into result. Singular input copies m
// through untouched.
func (m Matrix) InvertToRef(result *Matrix) {
	det := m.Determinant()
	if det == 0 {
		*result = m
		return
	}

	invDet := 1.0 / det

	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]

	result[0] = (m[5]*b11 - m[6]*b10 + m[7]*b09) * invDet
	result[1] = (m[2]*b10 - m[1]*b11 - m[3]*b09) * invDet
	result[2] = (m[13]*b05 - m[14]*b04 + m[15]*b03) * invDet
	result[3] = (m[10]*b04 - m[9]*b05 - m[11]*b03) * invDet
	result[4] = (m[6]*b08 - m[4]*b11 - m[7]*b07) * invDet
	result[5] = (m[0]*b11 - m[2]*b08 + m[3]*b07) * invDet
	result[6] = (m[14]*b02 - m[12]*b05 - m[15]*b01) * invDet
	result[7] = (m[8]*b05 - m[10]*b02 + m[11]*b01) * invDet
	result[8] = (m[4]*b10 - m[5]*b08 + m[7]*b06) * invDet
	result[9] = (m[1]*b08 - m[0]*b10 - m[3]*b06) * invDet
	result[10] = (m[12]*b04 - m[13]*b02 + m[15]*b00) * invDet
	result[11] = (m[9]*b02 - m[8]*b04 - m[11]*b00) * invDet
	result[12] = (m[5]*b07 - m[4]*b09 - m[6]*b06) * invDet
	result[13] = (m[0]*b09 - m[1]*b07 + m[2]*b06) * invDet
	result[14] = (m[13]*b01 - m[12]*b03 - m[14]*b00) * invDet
	result[15] = (m[8]*b03 - m[9]*b01 + m[10]*b00) * invDet
}

// Translation returns the matrix translating by (x, y, z).
func Translation(x, y, z float64) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling returns the matrix scaling by (x, y, z).
func Scaling(x, y, z float64) Matrix {
	return Matrix{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns the rotation of angle radians around the X axis.
func RotationX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns the rotation of angle radians around the Y axis.
func RotationY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns the rotation of angle radians around the Z axis.
func RotationZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationAxis returns the rotation of angle radians around an
// arbitrary axis. The axis is normalized before use.
func MatrixRotationAxis(axis Vector3, angle float64) Matrix {
	var result Matrix
	MatrixRotationAxisToRef(axis, angle, &result)
	return result
}

// MatrixRotationAxisToRef writes the axis-angle rotation into result.
func MatrixRotationAxisToRef(axis Vector3, angle float64, result *Matrix) {
	s := math.Sin(-angle)
	c := math.Cos(-angle)
	c1 := 1 - c
	n := axis.Normalize()

	result[0] = n.X*n.X*c1 + c
	result[1] = n.X*n.Y*c1 - n.Z*s
	result[2] = n.X*n.Z*c1 + n.Y*s
	result[3] = 0
	result[4] = n.Y*n.X*c1 + n.Z*s
	result[5] = n.Y*n.Y*c1 + c
	result[6] = n.Y*n.Z*c1 - n.X*s
	result[7] = 0
	result[8] = n.Z*n.X*c1 - n.Y*s
	result[9] = n.Z*n.Y*c1 + n.X*s
	result[10] = n.Z*n.Z*c1 + c
	result[11] = 0
	result[12] = 0
	result[13] = 0
	result[14] = 0
	result[15] = 1
}

// RotationYawPitchRollMatrix returns the combined yaw-pitch-roll rotation,
// composed through the quaternion form so both paths stay in agreement.
func RotationYawPitchRollMatrix(yaw, pitch, roll float64) Matrix {
	var result Matrix
	tmp := borrowTmp()
	quat := &tmp.quaternions[1]
	RotationYawPitchRollToRef(yaw, pitch, roll, quat)
	quat.ToRotationMatrixToRef(&result)
	tmp.release()
	return result
}

// FromXYZAxesToRef writes the basis matrix whose rows are the given axes.
func FromXYZAxesToRef(xaxis, yaxis, zaxis Vector3, result *Matrix) {
	result[0] = xaxis.X
	result[1] = xaxis.Y
	result[2] = xaxis.Z
	result[3] = 0
	result[4] = yaxis.X
	result[5] = yaxis.Y
	result[6] = yaxis.Z
	result[7] = 0
	result[8] = zaxis.X
	result[9] = zaxis.Y
	result[10] = zaxis.Z
	result[11] = 0
	result[12] = 0
	result[13] = 0
	result[14] = 0
	result[15] = 1
}

// LookAtLH returns the left-handed view matrix for a camera at eye looking at
// target with the given up direction.
func LookAtLH(eye, target, up Vector3) Matrix {
	var result Matrix
	LookAtLHToRef(eye, target, up, &result)
	return result
}

// LookAtLHToRef writes the left-handed view matrix into result. The camera
// axes are built in scratch vector slots.
func LookAtLHToRef(eye, target, up Vector3, result *Matrix) {
	tmp := borrowTmp()
	xAxis := &tmp.vectors[0]
	yAxis := &tmp.vectors[1]
	zAxis := &tmp.vectors[2]

	target.SubtractToRef(eye, zAxis)
	zAxis.NormalizeInPlace()

	CrossToRef(up, *zAxis, xAxis)
	if xAxis.LengthSquared() == 0 {
		// up parallel to the view direction; fall back to the world X axis
		xAxis.Set(1, 0, 0)
	} else {
		xAxis.NormalizeInPlace()
	}

	CrossToRef(*zAxis, *xAxis, yAxis)
	yAxis.NormalizeInPlace()

	ex := -Dot(*xAxis, eye)
	ey := -Dot(*yAxis, eye)
	ez := -Dot(*zAxis, eye)

	result[0] = xAxis.X
	result[1] = yAxis.X
	result[2] = zAxis.X
	result[3] = 0
	result[4] = xAxis.Y
	result[5] = yAxis.Y
	result[6] = zAxis.Y
	result[7] = 0
	result[8] = xAxis.Z
	result[9] = yAxis.Z
	result[10] = zAxis.Z
	result[11] = 0
	result[12] = ex
	result[13] = ey
	result[14] = ez
	result[15] = 1

	tmp.release()
}

// PerspectiveFovLH returns the left-handed perspective projection with a
// vertical field of view of fov radians. The output w carries view-space
// depth, so TransformCoordinates performs the perspective divide.
func PerspectiveFovLH(fov, aspect, znear, zfar float64) Matrix {
	t := 1.0 / math.Tan(fov*0.5)
	q := zfar / (zfar - znear)
	return Matrix{
		t / aspect, 0, 0, 0,
		0, t, 0, 0,
		0, 0, q, 1,
		0, 0, -znear * q, 0,
	}
}
