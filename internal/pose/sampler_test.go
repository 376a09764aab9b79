package pose

import (
	"math"
	"strings"
	"testing"

	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

func TestSampleStaysInsideEnvelope(t *testing.T) {
	env, err := DefaultEnvelope(gripper.VariantTwoFinger, object.VariantBox)
	if err != nil {
		t.Fatalf("default envelope: %v", err)
	}

	s := NewSampler(42)
	center := sim.Vec3{Z: 0.4}

	for i := 0; i < 10000; i++ {
		sp := s.Sample(env, center)

		if sp.Radius < 0.20 || sp.Radius > 0.30 {
			t.Fatalf("sample %d: radius %v outside [0.20, 0.30]", i, sp.Radius)
		}
		if got := center.X - sp.Pose.Position.X; math.Abs(got-sp.Radius) > 1e-12 {
			t.Fatalf("sample %d: x offset %v does not match radius %v", i, got, sp.Radius)
		}
		if y := sp.Pose.Position.Y; y < -0.05 || y > 0.05 {
			t.Fatalf("sample %d: y %v outside [-0.05, 0.05]", i, y)
		}
		if z := sp.Pose.Position.Z; z < center.Z-0.2 || z > center.Z {
			t.Fatalf("sample %d: z %v outside [%v, %v]", i, z, center.Z-0.2, center.Z)
		}
		if sp.Roll < -0.5 || sp.Roll > 0.5 {
			t.Fatalf("sample %d: roll %v outside [-0.5, 0.5]", i, sp.Roll)
		}
		if sp.Pitch != halfPi || sp.Yaw != 0 {
			t.Fatalf("sample %d: pitch/yaw (%v, %v) not fixed to (%v, 0)", i, sp.Pitch, sp.Yaw, halfPi)
		}
	}
}

func TestSampleReproducible(t *testing.T) {
	env, err := DefaultEnvelope(gripper.VariantMultiFinger, object.VariantCylinder)
	if err != nil {
		t.Fatalf("default envelope: %v", err)
	}

	a := NewSampler(7).Sample(env, sim.Vec3{Z: 0.4})
	b := NewSampler(7).Sample(env, sim.Vec3{Z: 0.4})
	if a != b {
		t.Errorf("same seed produced different samples: %+v vs %+v", a, b)
	}

	c := NewSampler(8).Sample(env, sim.Vec3{Z: 0.4})
	if a == c {
		t.Error("different seeds produced identical samples")
	}
}

func TestSampleOrientation(t *testing.T) {
	env := Envelope{BaseRadius: 0.25, Pitch: halfPi, Yaw: 0}
	sp := NewSampler(1).Sample(env, sim.Vec3{})

	roll, pitch, yaw := sp.Pose.Orientation.Euler()
	if math.Abs(roll) > 1e-9 || math.Abs(pitch-halfPi) > 1e-6 || math.Abs(yaw) > 1e-9 {
		t.Errorf("orientation euler: got (%v, %v, %v), want (0, %v, 0)", roll, pitch, yaw, halfPi)
	}
}

func TestEnvelopeValidate(t *testing.T) {
	valid := Envelope{
		BaseRadius:      0.25,
		RadiusJitterMin: -0.05, RadiusJitterMax: 0.05,
		YOffsetMin: -0.05, YOffsetMax: 0.05,
		ZVariationMin: -0.1, ZVariationMax: 0.1,
		RollMin: -0.5, RollMax: 0.5,
	}

	tests := []struct {
		name    string
		mutate  func(*Envelope)
		wantErr string
	}{
		{"valid", func(e *Envelope) {}, ""},
		{"degenerate-ranges-ok", func(e *Envelope) {
			e.RadiusJitterMin, e.RadiusJitterMax = 0, 0
			e.RollMin, e.RollMax = 0, 0
		}, ""},
		{"inverted-jitter", func(e *Envelope) { e.RadiusJitterMin = 0.1 }, "radius_jitter"},
		{"inverted-y", func(e *Envelope) { e.YOffsetMin = 0.2 }, "y_offset"},
		{"inverted-z", func(e *Envelope) { e.ZVariationMax = -0.2 }, "z_variation"},
		{"inverted-roll", func(e *Envelope) { e.RollMin = 1 }, "roll"},
		{"zero-radius", func(e *Envelope) { e.BaseRadius = 0 }, "base_radius"},
		{"negative-radius", func(e *Envelope) { e.BaseRadius = -0.1 }, "base_radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := valid
			tt.mutate(&env)
			err := env.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultEnvelopeCoverage(t *testing.T) {
	for _, g := range gripper.Variants() {
		for _, o := range object.Variants() {
			env, err := DefaultEnvelope(g, o)
			if err != nil {
				t.Errorf("%s/%s: %v", g, o, err)
				continue
			}
			if err := env.Validate(); err != nil {
				t.Errorf("%s/%s: built-in envelope invalid: %v", g, o, err)
			}
		}
	}

	if _, err := DefaultEnvelope(gripper.Variant("hexapod"), object.VariantBox); err == nil {
		t.Error("unknown gripper variant: expected error")
	}
	if _, err := DefaultEnvelope(gripper.VariantTwoFinger, object.Variant("sphere")); err == nil {
		t.Error("unknown object variant: expected error")
	}
}

func TestDefaultEnvelopeRadii(t *testing.T) {
	tests := []struct {
		gripper gripper.Variant
		object  object.Variant
		radius  float64
	}{
		{gripper.VariantTwoFinger, object.VariantBox, 0.25},
		{gripper.VariantTwoFinger, object.VariantCylinder, 0.22},
		{gripper.VariantMultiFinger, object.VariantBox, 0.35},
		{gripper.VariantMultiFinger, object.VariantCylinder, 0.30},
	}

	for _, tt := range tests {
		env, err := DefaultEnvelope(tt.gripper, tt.object)
		if err != nil {
			t.Errorf("%s/%s: %v", tt.gripper, tt.object, err)
			continue
		}
		if env.BaseRadius != tt.radius {
			t.Errorf("%s/%s: base radius %v, want %v", tt.gripper, tt.object, env.BaseRadius, tt.radius)
		}
	}
}
