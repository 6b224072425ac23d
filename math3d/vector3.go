// Package math3d implements the 3D transformation core: vectors, quaternions
// and 4x4 matrices with left-handed, row-vector conventions.
//
// Every operation comes in up to three forms: an allocating form returning a
// new value, an in-place form mutating the receiver and returning it for
// chaining, and a to-ref form writing into a caller-supplied output. Operands
// are always taken by value, so a to-ref call whose result aliases one of its
// inputs (a.AddToRef(a, &a)) is safe by construction.
//
// The package never returns errors or panics on degenerate input: division by
// zero and out-of-range arguments follow IEEE-754, and normalizing a
// zero-length vector is a defined no-op.
package math3d

import (
	"fmt"
	"math"

	"math3d-core/scalar"
)

// Vector3 is a 3-component point or direction.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Zero returns (0, 0, 0).
func Zero() Vector3 { return Vector3{} }

// One returns (1, 1, 1).
func One() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// Up returns (0, 1, 0).
func Up() Vector3 { return Vector3{Y: 1} }

// Down returns (0, -1, 0).
func Down() Vector3 { return Vector3{Y: -1} }

// Forward returns (0, 0, 1).
func Forward() Vector3 { return Vector3{Z: 1} }

// Backward returns (0, 0, -1).
func Backward() Vector3 { return Vector3{Z: -1} }

// Right returns (1, 0, 0).
func Right() Vector3 { return Vector3{X: 1} }

// Left returns (-1, 0, 0).
func Left() Vector3 { return Vector3{X: -1} }

// Vector3FromArray reads x, y, z from buf starting at offset.
func Vector3FromArray(buf []float64, offset int) Vector3 {
	return Vector3{X: buf[offset], Y: buf[offset+1], Z: buf[offset+2]}
}

// ToArray writes x, y, z into buf starting at offset.
func (v Vector3) ToArray(buf []float64, offset int) {
	buf[offset] = v.X
	buf[offset+1] = v.Y
	buf[offset+2] = v.Z
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Set assigns all three components and returns the receiver.
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// CopyFrom copies source into the receiver.
func (v *Vector3) CopyFrom(source Vector3) *Vector3 {
	v.X, v.Y, v.Z = source.X, source.Y, source.Z
	return v
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddInPlace adds other into the receiver.
func (v *Vector3) AddInPlace(other Vector3) *Vector3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// AddToRef writes v + other into result.
func (v Vector3) AddToRef(other Vector3, result *Vector3) {
	result.X = v.X + other.X
	result.Y = v.Y + other.Y
	result.Z = v.Z + other.Z
}

// Subtract returns v - other.
func (v Vector3) Subtract(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractInPlace subtracts other from the receiver.
func (v *Vector3) SubtractInPlace(other Vector3) *Vector3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// SubtractToRef writes v - other into result.
func (v Vector3) SubtractToRef(other Vector3, result *Vector3) {
	result.X = v.X - other.X
	result.Y = v.Y - other.Y
	result.Z = v.Z - other.Z
}

// Multiply returns the component-wise product of v and other.
func (v Vector3) Multiply(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MultiplyInPlace multiplies the receiver component-wise by other.
func (v *Vector3) MultiplyInPlace(other Vector3) *Vector3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// MultiplyToRef writes the component-wise product into result.
func (v Vector3) MultiplyToRef(other Vector3, result *Vector3) {
	result.X = v.X * other.X
	result.Y = v.Y * other.Y
	result.Z = v.Z * other.Z
}

// Divide returns the component-wise quotient of v by other. A zero component
// in other yields an IEEE-754 infinity or NaN, not an error.
func (v Vector3) Divide(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivideInPlace divides the receiver component-wise by other.
func (v *Vector3) DivideInPlace(other Vector3) *Vector3 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// DivideToRef writes the component-wise quotient into result.
func (v Vector3) DivideToRef(other Vector3, result *Vector3) {
	result.X = v.X / other.X
	result.Y = v.Y / other.Y
	result.Z = v.Z / other.Z
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// ScaleInPlace scales the receiver by s.
func (v *Vector3) ScaleInPlace(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// ScaleToRef writes v scaled by s into result.
func (v Vector3) ScaleToRef(s float64, result *Vector3) {
	result.X = v.X * s
	result.Y = v.Y * s
	result.Z = v.Z * s
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// NegateInPlace negates the receiver.
func (v *Vector3) NegateInPlace() *Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// NegateToRef writes -v into result.
func (v Vector3) NegateToRef(result *Vector3) {
	result.X = -v.X
	result.Y = -v.Y
	result.Z = -v.Z
}

// Floor returns the per-component floor of v.
func (v Vector3) Floor() Vector3 {
	return Vector3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// FloorToRef writes the per-component floor of v into result.
func (v Vector3) FloorToRef(result *Vector3) {
	result.X = math.Floor(v.X)
	result.Y = math.Floor(v.Y)
	result.Z = math.Floor(v.Z)
}

// Fract returns the per-component fractional part, x - floor(x).
func (v Vector3) Fract() Vector3 {
	return Vector3{
		v.X - math.Floor(v.X),
		v.Y - math.Floor(v.Y),
		v.Z - math.Floor(v.Z),
	}
}

// FractToRef writes the per-component fractional part into result.
func (v Vector3) FractToRef(result *Vector3) {
	result.X = v.X - math.Floor(v.X)
	result.Y = v.Y - math.Floor(v.Y)
	result.Z = v.Z - math.Floor(v.Z)
}

// Clamp limits each component of v to the range [min, max].
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	var result Vector3
	v.ClampToRef(min, max, &result)
	return result
}

// ClampToRef writes the component-wise clamp of v into result.
func (v Vector3) ClampToRef(min, max Vector3, result *Vector3) {
	result.X = scalar.Clamp(v.X, min.X, max.X)
	result.Y = scalar.Clamp(v.Y, min.Y, max.Y)
	result.Z = scalar.Clamp(v.Z, min.Z, max.Z)
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared norm, avoiding the square root for
// comparison use.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit-length copy of v. Zero-length and already-unit
// vectors are returned unchanged; this fast path never divides by zero.
func (v Vector3) Normalize() Vector3 {
	result := v
	result.NormalizeInPlace()
	return result
}

// NormalizeInPlace normalizes the receiver, with the same zero/unit no-op
// fast path as Normalize.
func (v *Vector3) NormalizeInPlace() *Vector3 {
	length := v.Length()
	if length == 0 || length == 1.0 {
		return v
	}
	return v.ScaleInPlace(1.0 / length)
}

// NormalizeToRef writes the normalized v into result.
func (v Vector3) NormalizeToRef(result *Vector3) {
	result.CopyFrom(v)
	result.NormalizeInPlace()
}

// Equals reports exact component equality.
func (v Vector3) Equals(other Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// EqualsWithEpsilon reports per-component equality within epsilon. Pass
// scalar.Epsilon for the library default.
func (v Vector3) EqualsWithEpsilon(other Vector3, epsilon float64) bool {
	return scalar.WithinEpsilon(v.X, other.X, epsilon) &&
		scalar.WithinEpsilon(v.Y, other.Y, epsilon) &&
		scalar.WithinEpsilon(v.Z, other.Z, epsilon)
}

// GetHashCode returns an order-sensitive polynomial hash over x, y, z.
// Vectors equal under Equals hash identically; -0 and NaN payloads are not
// canonicalized.
func (v Vector3) GetHashCode() uint64 {
	hash := math.Float64bits(v.X)
	hash = hash*397 ^ math.Float64bits(v.Y)
	hash = hash*397 ^ math.Float64bits(v.Z)
	return hash
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b (left-handed frame).
func Cross(a, b Vector3) Vector3 {
	var result Vector3
	CrossToRef(a, b, &result)
	return result
}

// CrossToRef writes the cross product of a and b into result.
func CrossToRef(a, b Vector3, result *Vector3) {
	result.X = a.Y*b.Z - a.Z*b.Y
	result.Y = a.Z*b.X - a.X*b.Z
	result.Z = a.X*b.Y - a.Y*b.X
}

// Distance returns the Euclidean distance between points a and b.
func Distance(a, b Vector3) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared returns the squared distance between points a and b.
func DistanceSquared(a, b Vector3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// Center returns the midpoint of a and b.
func Center(a, b Vector3) Vector3 {
	return a.Add(b).Scale(0.5)
}

// Minimize returns the component-wise minimum of a and b.
func Minimize(a, b Vector3) Vector3 {
	return Vector3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Maximize returns the component-wise maximum of a and b.
func Maximize(a, b Vector3) Vector3 {
	return Vector3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Lerp interpolates linearly from start to end. t is not clamped, so values
// outside [0, 1] extrapolate.
func Lerp(start, end Vector3, t float64) Vector3 {
	var result Vector3
	LerpToRef(start, end, t, &result)
	return result
}

// LerpToRef writes the linear interpolation into result.
func LerpToRef(start, end Vector3, t float64, result *Vector3) {
	result.X = start.X + (end.X-start.X)*t
	result.Y = start.Y + (end.Y-start.Y)*t
	result.Z = start.Z + (end.Z-start.Z)*t
}

// Hermite returns the cubic Hermite interpolation between value1 and value2
// with tangents tangent1 and tangent2 at amount.
func Hermite(value1, tangent1, value2, tangent2 Vector3, amount float64) Vector3 {
	squared := amount * amount
	cubed := amount * squared
	part1 := 2*cubed - 3*squared + 1
	part2 := -2*cubed + 3*squared
	part3 := cubed - 2*squared + amount
	part4 := cubed - squared

	return Vector3{
		value1.X*part1 + value2.X*part2 + tangent1.X*part3 + tangent2.X*part4,
		value1.Y*part1 + value2.Y*part2 + tangent1.Y*part3 + tangent2.Y*part4,
		value1.Z*part1 + value2.Z*part2 + tangent1.Z*part3 + tangent2.Z*part4,
	}
}

// CatmullRom returns the uniform Catmull-Rom interpolation through value2 and
// value3 as amount goes 0 to 1, with value1 and value4 shaping the tangents.
func CatmullRom(value1, value2, value3, value4 Vector3, amount float64) Vector3 {
	squared := amount * amount
	cubed := amount * squared

	return Vector3{
		0.5 * (2*value2.X +
			(-value1.X+value3.X)*amount +
			(2*value1.X-5*value2.X+4*value3.X-value4.X)*squared +
			(-value1.X+3*value2.X-3*value3.X+value4.X)*cubed),
		0.5 * (2*value2.Y +
			(-value1.Y+value3.Y)*amount +
			(2*value1.Y-5*value2.Y+4*value3.Y-value4.Y)*squared +
			(-value1.Y+3*value2.Y-3*value3.Y+value4.Y)*cubed),
		0.5 * (2*value2.Z +
			(-value1.Z+value3.Z)*amount +
			(2*value1.Z-5*value2.Z+4*value3.Z-value4.Z)*squared +
			(-value1.Z+3*value2.Z-3*value3.Z+value4.Z)*cubed),
	}
}

// TransformCoordinates applies matrix to the point v, including translation
// and the perspective divide.
func TransformCoordinates(v Vector3, matrix Matrix) Vector3 {
	var result Vector3
	TransformCoordinatesToRef(v, matrix, &result)
	return result
}

// TransformCoordinatesToRef writes the homogeneous transform of v into result.
func TransformCoordinatesToRef(v Vector3, matrix Matrix, result *Vector3) {
	TransformCoordinatesFromFloatsToRef(v.X, v.Y, v.Z, matrix, result)
}

// TransformCoordinatesFromFloatsToRef transforms the point (x, y, z) with an
// implicit fourth coordinate of 1 and divides by the resulting w.
func TransformCoordinatesFromFloatsToRef(x, y, z float64, m Matrix, result *Vector3) {
	rw := x*m[3] + y*m[7] + z*m[11] + m[15]
	result.X = (x*m[0] + y*m[4] + z*m[8] + m[12]) / rw
	result.Y = (x*m[1] + y*m[5] + z*m[9] + m[13]) / rw
	result.Z = (x*m[2] + y*m[6] + z*m[10] + m[14]) / rw
}

// TransformNormal applies only the 3x3 linear part of matrix to the direction
// v: no translation, no perspective divide.
func TransformNormal(v Vector3, matrix Matrix) Vector3 {
	var result Vector3
	TransformNormalToRef(v, matrix, &result)
	return result
}

// TransformNormalToRef writes the linear transform of the direction v into
// result.
func TransformNormalToRef(v Vector3, matrix Matrix, result *Vector3) {
	TransformNormalFromFloatsToRef(v.X, v.Y, v.Z, matrix, result)
}

// TransformNormalFromFloatsToRef transforms the direction (x, y, z) by the
// 3x3 part of m.
func TransformNormalFromFloatsToRef(x, y, z float64, m Matrix, result *Vector3) {
	result.X = x*m[0] + y*m[4] + z*m[8]
	result.Y = x*m[1] + y*m[5] + z*m[9]
	result.Z = x*m[2] + y*m[6] + z*m[10]
}

// RotationFromAxes returns the Euler angles (in the yaw-pitch-roll
// convention) of the rotation carrying the standard basis onto the frame
// (axis1, axis2, axis3).
func RotationFromAxes(axis1, axis2, axis3 Vector3) Vector3 {
	var result Vector3
	RotationFromAxesToRef(axis1, axis2, axis3, &result)
	return result
}

// RotationFromAxesToRef writes the Euler angles of the (axis1, axis2, axis3)
// frame into result. The intermediate quaternion lives in a scratch slot and
// never escapes; the caller's axis vectors are not mutated.
func RotationFromAxesToRef(axis1, axis2, axis3 Vector3, result *Vector3) {
	tmp := borrowTmp()
	quat := &tmp.quaternions[0]
	QuaternionFromAxesToRef(axis1, axis2, axis3, quat)
	quat.ToEulerAnglesToRef(result)
	tmp.release()
}

// GetAngleBetweenVectors returns the signed angle between vector0 and vector1
// in radians. The normal picks the half-space that counts as positive: when
// the cross product of the normalized inputs points along normal the angle is
// positive, otherwise negative.
func GetAngleBetweenVectors(vector0, vector1, normal Vector3) float64 {
	tmp := borrowTmp()
	v0 := &tmp.vectors[1]
	v0.CopyFrom(vector0)
	v0.NormalizeInPlace()

	v1 := &tmp.vectors[2]
	v1.CopyFrom(vector1)
	v1.NormalizeInPlace()

	dot := scalar.Clamp(Dot(*v0, *v1), -1, 1)

	n := &tmp.vectors[3]
	CrossToRef(*v0, *v1, n)
	aligned := Dot(*n, normal) > 0
	tmp.release()

	if aligned {
		return math.Acos(dot)
	}
	return -math.Acos(dot)
}

// GetClipFactor returns the interpolation parameter at which the segment from
// vector0 to vector1 crosses the plane with normal axis and offset size.
// When both points are equidistant from the plane the division is not
// guarded; the IEEE-754 infinity or NaN propagates to the caller.
func GetClipFactor(vector0, vector1, axis Vector3, size float64) float64 {
	d0 := Dot(vector0, axis) - size
	d1 := Dot(vector1, axis) - size
	return d0 / (d0 - d1)
}
