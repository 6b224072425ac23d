package math3d

import (
	"fmt"
	"math"

	"math3d-core/scalar"
)

// Vector2 is a plain 2-component data holder, used for texture coordinates
// and screen positions.
type Vector2 struct {
	X, Y float64
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2FromArray reads x, y from buf starting at offset.
func Vector2FromArray(buf []float64, offset int) Vector2 {
	return Vector2{X: buf[offset], Y: buf[offset+1]}
}

// ToArray writes x, y into buf starting at offset.
func (v Vector2) ToArray(buf []float64, offset int) {
	buf[offset] = v.X
	buf[offset+1] = v.Y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v Vector2) Subtract(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Equals reports exact component equality.
func (v Vector2) Equals(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

// EqualsWithEpsilon reports per-component equality within epsilon.
func (v Vector2) EqualsWithEpsilon(other Vector2, epsilon float64) bool {
	return scalar.WithinEpsilon(v.X, other.X, epsilon) &&
		scalar.WithinEpsilon(v.Y, other.Y, epsilon)
}
