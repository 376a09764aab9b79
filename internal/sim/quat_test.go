package sim

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Quat
		want Quat
	}{
		{"already-unit", Quat{0, 0, 0, 1}, Quat{0, 0, 0, 1}},
		{"scaled", Quat{0, 0, 0, 2}, Quat{0, 0, 0, 1}},
		{"zero-degrades-to-identity", Quat{}, Quat{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !quatClose(got, tt.want, 1e-12) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	q := Quat{0.3, -1.2, 0.7, 2.5}.Normalize()
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.Abs(n-1) > 1e-12 {
		t.Errorf("norm after Normalize: got %v, want 1", n)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		roll, pitch, yaw float64
	}{
		{"identity", 0, 0, 0},
		{"roll-only", 0.5, 0, 0},
		{"pitch-only", 0, 0.7, 0},
		{"yaw-only", 0, 0, -1.1},
		{"combined", -0.4, 0.9, 0.3},
		{"negative", -0.5, -0.2, -0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromEuler(tt.roll, tt.pitch, tt.yaw)
			roll, pitch, yaw := q.Euler()
			if math.Abs(roll-tt.roll) > 1e-9 ||
				math.Abs(pitch-tt.pitch) > 1e-9 ||
				math.Abs(yaw-tt.yaw) > 1e-9 {
				t.Errorf("round trip: got (%v, %v, %v), want (%v, %v, %v)",
					roll, pitch, yaw, tt.roll, tt.pitch, tt.yaw)
			}
		})
	}
}

func TestQuatFromEulerIsUnit(t *testing.T) {
	q := QuatFromEuler(0.5, 1.5707963267948966, 0)
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.Abs(n-1) > 1e-12 {
		t.Errorf("norm: got %v, want 1", n)
	}
}

func quatClose(a, b Quat, tol float64) bool {
	return math.Abs(a.X-b.X) < tol &&
		math.Abs(a.Y-b.Y) < tol &&
		math.Abs(a.Z-b.Z) < tol &&
		math.Abs(a.W-b.W) < tol
}
