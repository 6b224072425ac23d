package math3d

import (
	"fmt"
	"math"

	"math3d-core/scalar"
)

// Quaternion is a rotation as (x, y, z, w). Geometric use assumes unit norm;
// the type never renormalizes on its own, so callers renormalize after long
// composition chains.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion returns the quaternion (x, y, z, w).
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionIdentity returns the identity rotation (0, 0, 0, 1).
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromArray reads x, y, z, w from buf starting at offset.
func QuaternionFromArray(buf []float64, offset int) Quaternion {
	return Quaternion{buf[offset], buf[offset+1], buf[offset+2], buf[offset+3]}
}

// ToArray writes x, y, z, w into buf starting at offset.
func (q Quaternion) ToArray(buf []float64, offset int) {
	buf[offset] = q.X
	buf[offset+1] = q.Y
	buf[offset+2] = q.Z
	buf[offset+3] = q.W
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Set assigns all four components and returns the receiver.
func (q *Quaternion) Set(x, y, z, w float64) *Quaternion {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// CopyFrom copies source into the receiver.
func (q *Quaternion) CopyFrom(source Quaternion) *Quaternion {
	q.X, q.Y, q.Z, q.W = source.X, source.Y, source.Z, source.W
	return q
}

// Equals reports exact component equality.
func (q Quaternion) Equals(other Quaternion) bool {
	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

// EqualsWithEpsilon reports per-component equality within epsilon.
func (q Quaternion) EqualsWithEpsilon(other Quaternion, epsilon float64) bool {
	return scalar.WithinEpsilon(q.X, other.X, epsilon) &&
		scalar.WithinEpsilon(q.Y, other.Y, epsilon) &&
		scalar.WithinEpsilon(q.Z, other.Z, epsilon) &&
		scalar.WithinEpsilon(q.W, other.W, epsilon)
}

// Add returns q + other component-wise.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Subtract returns q - other component-wise.
func (q Quaternion) Subtract(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// Scale returns q scaled by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Multiply returns the Hamilton product q * other: the rotation other
// followed by q in the left-handed composition order.
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	var result Quaternion
	q.MultiplyToRef(other, &result)
	return result
}

// MultiplyToRef writes q * other into result.
func (q Quaternion) MultiplyToRef(other Quaternion, result *Quaternion) {
	result.X = q.X*other.W + q.Y*other.Z - q.Z*other.Y + q.W*other.X
	result.Y = -q.X*other.Z + q.Y*other.W + q.Z*other.X + q.W*other.Y
	result.Z = q.X*other.Y - q.Y*other.X + q.Z*other.W + q.W*other.Z
	result.W = -q.X*other.X - q.Y*other.Y - q.Z*other.Z + q.W*other.W
}

// MultiplyInPlace sets the receiver to q * other.
func (q *Quaternion) MultiplyInPlace(other Quaternion) *Quaternion {
	q.MultiplyToRef(other, q)
	return q
}

// Conjugate returns (-x, -y, -z, w).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// ConjugateInPlace conjugates the receiver.
func (q *Quaternion) ConjugateInPlace() *Quaternion {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	return q
}

// Length returns the norm of q.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// NormalizeInPlace rescales the receiver to unit norm. A zero quaternion is
// left unchanged.
func (q *Quaternion) NormalizeInPlace() *Quaternion {
	length := q.Length()
	if length == 0 || length == 1.0 {
		return q
	}
	inv := 1.0 / length
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
	return q
}

// RotationYawPitchRoll returns the rotation from yaw around Y, then pitch
// around X, then roll around Z (left-handed).
func RotationYawPitchRoll(yaw, pitch, roll float64) Quaternion {
	var result Quaternion
	RotationYawPitchRollToRef(yaw, pitch, roll, &result)
	return result
}

// RotationYawPitchRollToRef writes the yaw-pitch-roll rotation into result.
func RotationYawPitchRollToRef(yaw, pitch, roll float64, result *Quaternion) {
	halfRoll := roll * 0.5
	halfPitch := pitch * 0.5
	halfYaw := yaw * 0.5

	sinRoll, cosRoll := math.Sincos(halfRoll)
	sinPitch, cosPitch := math.Sincos(halfPitch)
	sinYaw, cosYaw := math.Sincos(halfYaw)

	result.X = cosYaw*sinPitch*cosRoll + sinYaw*cosPitch*sinRoll
	result.Y = sinYaw*cosPitch*cosRoll - cosYaw*sinPitch*sinRoll
	result.Z = cosYaw*cosPitch*sinRoll - sinYaw*sinPitch*cosRoll
	result.W = cosYaw*cosPitch*cosRoll + sinYaw*sinPitch*sinRoll
}

// QuaternionRotationAxis returns the rotation of angle radians around axis.
func QuaternionRotationAxis(axis Vector3, angle float64) Quaternion {
	var result Quaternion
	QuaternionRotationAxisToRef(axis, angle, &result)
	return result
}

// QuaternionRotationAxisToRef writes the axis-angle rotation into result.
// The axis is normalized before use; the caller's vector is untouched.
func QuaternionRotationAxisToRef(axis Vector3, angle float64, result *Quaternion) {
	sin, cos := math.Sincos(angle * 0.5)
	n := axis.Normalize()
	result.X = n.X * sin
	result.Y = n.Y * sin
	result.Z = n.Z * sin
	result.W = cos
}

// QuaternionFromAxes returns the rotation carrying the standard basis onto
// the frame (axis1, axis2, axis3).
func QuaternionFromAxes(axis1, axis2, axis3 Vector3) Quaternion {
	var result Quaternion
	QuaternionFromAxesToRef(axis1, axis2, axis3, &result)
	return result
}

// QuaternionFromAxesToRef writes the basis-change rotation into result. The
// axes are normalized into locals and the intermediate rotation matrix lives
// in a scratch slot.
func QuaternionFromAxesToRef(axis1, axis2, axis3 Vector3, result *Quaternion) {
	tmp := borrowTmp()
	rotMat := &tmp.matrices[0]
	FromXYZAxesToRef(axis1.Normalize(), axis2.Normalize(), axis3.Normalize(), rotMat)
	QuaternionFromRotationMatrixToRef(*rotMat, result)
	tmp.release()
}

// QuaternionFromRotationMatrix returns the rotation encoded in the 3x3 part
// of matrix, which must be orthonormal.
func QuaternionFromRotationMatrix(matrix Matrix) Quaternion {
	var result Quaternion
	QuaternionFromRotationMatrixToRef(matrix, &result)
	return result
}

// QuaternionFromRotationMatrixToRef writes the rotation of matrix into
// result, branching on the trace for numerical stability.
func QuaternionFromRotationMatrixToRef(m Matrix, result *Quaternion) {
	trace := m[0] + m[5] + m[10]

	if trace > 0 {
		s := 0.5 / math.Sqrt(trace+1.0)
		result.W = 0.25 / s
		result.X = (m[6] - m[9]) * s
		result.Y = (m[8] - m[2]) * s
		result.Z = (m[1] - m[4]) * s
	} else if m[0] > m[5] && m[0] > m[10] {
		s := 2.0 * math.Sqrt(1.0+m[0]-m[5]-m[10])
		result.W = (m[6] - m[9]) / s
		result.X = 0.25 * s
		result.Y = (m[4] + m[1]) / s
		result.Z = (m[8] + m[2]) / s
	} else if m[5] > m[10] {
		s := 2.0 * math.Sqrt(1.0+m[5]-m[0]-m[10])
		result.W = (m[8] - m[2]) / s
		result.X = (m[4] + m[1]) / s
		result.Y = 0.25 * s
		result.Z = (m[9] + m[6]) / s
	} else {
		s := 2.0 * math.Sqrt(1.0+m[10]-m[0]-m[5])
		result.W = (m[1] - m[4]) / s
		result.X = (m[8] + m[2]) / s
		result.Y = (m[9] + m[6]) / s
		result.Z = 0.25 * s
	}
}

// ToEulerAngles returns the Euler angles of q as (pitch, yaw, roll) in x, y,
// z, matching RotationYawPitchRoll.
func (q Quaternion) ToEulerAngles() Vector3 {
	var result Vector3
	q.ToEulerAnglesToRef(&result)
	return result
}

// ToEulerAnglesToRef writes the Euler angles of q into result, clamping to
// the poles when pitch approaches +-pi/2.
func (q Quaternion) ToEulerAnglesToRef(result *Vector3) {
	qz := q.Z
	qx := q.X
	qy := q.Y
	qw := q.W

	zAxisY := qy*qz - qx*qw
	const limit = 0.4999999

	if zAxisY < -limit {
		result.Y = 2 * math.Atan2(qy, qw)
		result.X = math.Pi / 2
		result.Z = 0
	} else if zAxisY > limit {
		result.Y = 2 * math.Atan2(qy, qw)
		result.X = -math.Pi / 2
		result.Z = 0
	} else {
		sqw := qw * qw
		sqz := qz * qz
		sqx := qx * qx
		sqy := qy * qy
		result.Z = math.Atan2(2.0*(qx*qy+qz*qw), -sqz-sqx+sqy+sqw)
		result.X = math.Asin(-2.0 * zAxisY)
		result.Y = math.Atan2(2.0*(qz*qx+qy*qw), sqz-sqx-sqy+sqw)
	}
}

// ToRotationMatrixToRef writes the rotation matrix of q into result.
func (q Quaternion) ToRotationMatrixToRef(result *Matrix) {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	zw := q.Z * q.W
	zx := q.Z * q.X
	yw := q.Y * q.W
	yz := q.Y * q.Z
	xw := q.X * q.W

	result[0] = 1.0 - 2.0*(yy+zz)
	result[1] = 2.0 * (xy + zw)
	result[2] = 2.0 * (zx - yw)
	result[3] = 0
	result[4] = 2.0 * (xy - zw)
	result[5] = 1.0 - 2.0*(zz+xx)
	result[6] = 2.0 * (yz + xw)
	result[7] = 0
	result[8] = 2.0 * (zx + yw)
	result[9] = 2.0 * (yz - xw)
	result[10] = 1.0 - 2.0*(yy+xx)
	result[11] = 0
	result[12] = 0
	result[13] = 0
	result[14] = 0
	result[15] = 1.0
}

// Slerp spherically interpolates from left to right at amount.
func Slerp(left, right Quaternion, amount float64) Quaternion {
	var result Quaternion
	SlerpToRef(left, right, amount, &result)
	return result
}

// SlerpToRef writes the spherical interpolation into result, taking the
// shorter arc and falling back to linear blending when the rotations are
// nearly parallel.
func SlerpToRef(left, right Quaternion, amount float64, result *Quaternion) {
	var num2, num3 float64
	num4 := left.X*right.X + left.Y*right.Y + left.Z*right.Z + left.W*right.W
	flag := false

	if num4 < 0 {
		flag = true
		num4 = -num4
	}

	if num4 > 0.999999 {
		num3 = 1 - amount
		num2 = amount
		if flag {
			num2 = -amount
		}
	} else {
		num5 := math.Acos(num4)
		num6 := 1.0 / math.Sin(num5)
		num3 = math.Sin((1-amount)*num5) * num6
		num2 = math.Sin(amount*num5) * num6
		if flag {
			num2 = -num2
		}
	}

	result.X = num3*left.X + num2*right.X
	result.Y = num3*left.Y + num2*right.Y
	result.Z = num3*left.Z + num2*right.Z
	result.W = num3*left.W + num2*right.W
}
