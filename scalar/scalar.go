// Package scalar provides epsilon-tolerant float comparison and small
// numeric helpers shared by the math3d types.
package scalar

import "math"

// Epsilon is the library-wide default tolerance for approximate equality.
const Epsilon = 0.001

// WithinEpsilon reports whether a and b differ by at most epsilon.
func WithinEpsilon(a, b, epsilon float64) bool {
	d := a - b
	return -epsilon <= d && d <= epsilon
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates linearly from start to end. t is not clamped.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// ToRadians converts degrees to radians.
func ToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
