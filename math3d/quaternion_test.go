package math3d

import (
	"math"
	"testing"
)

func quatClose(a, b Quaternion, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.W-b.W) <= tol
}

func TestQuaternionIdentity(t *testing.T) {
	id := QuaternionIdentity()
	q := RotationYawPitchRoll(0.4, -0.2, 1.1)

	if got := q.Multiply(id); !quatClose(got, q, tolerance) {
		t.Errorf("q * identity = %v, want %v", got, q)
	}
	if got := id.Multiply(q); !quatClose(got, q, tolerance) {
		t.Errorf("identity * q = %v, want %v", got, q)
	}
}

func TestYawPitchRollEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll float64
	}{
		{"Zero rotation", 0, 0, 0},
		{"Yaw only", 0.7, 0, 0},
		{"Pitch only", 0, 0.4, 0},
		{"Roll only", 0, 0, -0.9},
		{"Combined", 0.3, 0.2, 0.1},
		{"Negative angles", -1.1, -0.6, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := RotationYawPitchRoll(tt.yaw, tt.pitch, tt.roll)
			euler := q.ToEulerAngles()
			want := NewVector3(tt.pitch, tt.yaw, tt.roll)
			if !vecClose(euler, want, 1e-7) {
				t.Errorf("euler = %v, want %v", euler, want)
			}
		})
	}
}

func TestQuaternionUnitNorm(t *testing.T) {
	q := RotationYawPitchRoll(1.2, -0.5, 0.3)
	if math.Abs(q.Length()-1) > tolerance {
		t.Errorf("yaw-pitch-roll quaternion length = %v, want 1", q.Length())
	}

	q = QuaternionRotationAxis(NewVector3(1, 2, 3), 1.4)
	if math.Abs(q.Length()-1) > tolerance {
		t.Errorf("axis-angle quaternion length = %v, want 1", q.Length())
	}
}

// Composition convention: q1.Multiply(q2) applies q2's rotation first, so its
// matrix is M(q2) * M(q1) under the row-vector convention.
func TestQuaternionMultiplyMatchesMatrixComposition(t *testing.T) {
	q1 := RotationYawPitchRoll(0.6, 0.2, -0.4)
	q2 := QuaternionRotationAxis(NewVector3(1, 1, 0), 0.8)

	var m1, m2, mq Matrix
	q1.ToRotationMatrixToRef(&m1)
	q2.ToRotationMatrixToRef(&m2)
	q1.Multiply(q2).ToRotationMatrixToRef(&mq)

	want := m2.Multiply(m1)
	if !mq.EqualsWithEpsilon(want, 1e-9) {
		t.Errorf("M(q1*q2) = %v, want %v", mq, want)
	}
}

func TestQuaternionMultiplyToRefAliasing(t *testing.T) {
	q1 := RotationYawPitchRoll(0.6, 0.2, -0.4)
	q2 := QuaternionRotationAxis(NewVector3(0, 1, 0), 1.3)
	want := q1.Multiply(q2)

	got := q1
	got.MultiplyInPlace(q2)
	if !got.Equals(want) {
		t.Errorf("MultiplyInPlace = %v, want %v", got, want)
	}
}

func TestQuaternionConjugateUndoesRotation(t *testing.T) {
	q := RotationYawPitchRoll(0.9, -0.3, 0.5)
	got := q.Multiply(q.Conjugate())
	if !quatClose(got, QuaternionIdentity(), tolerance) {
		t.Errorf("q * conj(q) = %v, want identity", got)
	}
}

func TestQuaternionFromAxes(t *testing.T) {
	t.Run("Standard basis gives identity", func(t *testing.T) {
		got := QuaternionFromAxes(Right(), Up(), Forward())
		if !quatClose(got, QuaternionIdentity(), tolerance) {
			t.Errorf("quaternion = %v, want identity", got)
		}
	})

	t.Run("Rotated frame round-trips through the matrix", func(t *testing.T) {
		want := RotationYawPitchRoll(0.5, 0.25, -0.75)
		var rot Matrix
		want.ToRotationMatrixToRef(&rot)

		axis1 := TransformNormal(Right(), rot)
		axis2 := TransformNormal(Up(), rot)
		axis3 := TransformNormal(Forward(), rot)

		got := QuaternionFromAxes(axis1, axis2, axis3)
		// q and -q encode the same rotation
		if !quatClose(got, want, 1e-7) && !quatClose(got.Scale(-1), want, 1e-7) {
			t.Errorf("quaternion = %v, want %v (up to sign)", got, want)
		}
	})
}

func TestQuaternionFromRotationMatrixBranches(t *testing.T) {
	// Angles near pi push the trace negative, exercising the non-trace
	// branches of the conversion.
	tests := []struct {
		name string
		q    Quaternion
	}{
		{"Near pi around X", QuaternionRotationAxis(NewVector3(1, 0.1, 0.1), 3.0)},
		{"Near pi around Y", QuaternionRotationAxis(NewVector3(0.1, 1, 0.1), 3.0)},
		{"Near pi around Z", QuaternionRotationAxis(NewVector3(0.1, 0.1, 1), 3.0)},
		{"Small rotation", QuaternionRotationAxis(NewVector3(1, 2, 3), 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Matrix
			tt.q.ToRotationMatrixToRef(&m)
			got := QuaternionFromRotationMatrix(m)
			if !quatClose(got, tt.q, 1e-7) && !quatClose(got.Scale(-1), tt.q, 1e-7) {
				t.Errorf("recovered %v, want %v (up to sign)", got, tt.q)
			}
		})
	}
}

func TestSlerp(t *testing.T) {
	left := RotationYawPitchRoll(0.2, 0.1, 0)
	right := RotationYawPitchRoll(1.2, -0.4, 0.3)

	if got := Slerp(left, right, 0); !quatClose(got, left, tolerance) {
		t.Errorf("Slerp at 0 = %v, want %v", got, left)
	}
	if got := Slerp(left, right, 1); !quatClose(got, right, tolerance) {
		t.Errorf("Slerp at 1 = %v, want %v", got, right)
	}

	mid := Slerp(left, right, 0.5)
	if math.Abs(mid.Length()-1) > tolerance {
		t.Errorf("Slerp midpoint length = %v, want 1", mid.Length())
	}

	// Nearly parallel rotations fall back to the linear blend.
	nearby := RotationYawPitchRoll(0.2000001, 0.1, 0)
	if got := Slerp(left, nearby, 0.5); math.Abs(got.Length()-1) > 1e-6 {
		t.Errorf("near-parallel slerp length = %v, want ~1", got.Length())
	}
}

func TestQuaternionNormalizeInPlace(t *testing.T) {
	q := NewQuaternion(2, 0, 0, 2)
	q.NormalizeInPlace()
	if math.Abs(q.Length()-1) > tolerance {
		t.Errorf("normalized length = %v, want 1", q.Length())
	}

	zero := Quaternion{}
	zero.NormalizeInPlace()
	if !zero.Equals(Quaternion{}) {
		t.Errorf("normalizing zero quaternion mutated it: %v", zero)
	}
}

func TestQuaternionArrayInterop(t *testing.T) {
	buf := make([]float64, 6)
	q := NewQuaternion(0.1, 0.2, 0.3, 0.9)
	q.ToArray(buf, 1)
	if buf[1] != 0.1 || buf[2] != 0.2 || buf[3] != 0.3 || buf[4] != 0.9 {
		t.Errorf("ToArray wrote %v", buf)
	}
	if got := QuaternionFromArray(buf, 1); !got.Equals(q) {
		t.Errorf("FromArray = %v, want %v", got, q)
	}
}
