package trial

import (
	"context"
	"math"
	"testing"

	"github.com/openmanip/graspbench/go-controller/internal/memsim"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name  string
		delta float64
		want  Tier
	}{
		{"well-above-full", 0.3, TierSuccess},
		{"just-above-full", 0.1000001, TierSuccess},
		{"exactly-full", 0.1, TierPartial},
		{"between", 0.07, TierPartial},
		{"exactly-partial", 0.05, TierPartial},
		{"just-below-partial", 0.0499999, TierFailure},
		{"zero", 0, TierFailure},
		{"negative", -0.2, TierFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Classify(tt.delta); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.delta, got, tt.want)
			}
		})
	}
}

func TestTierCodes(t *testing.T) {
	tests := []struct {
		tier Tier
		code int
		str  string
	}{
		{TierSuccess, 1, "success"},
		{TierPartial, 2, "partial"},
		{TierFailure, 0, "failure"},
	}

	for _, tt := range tests {
		if tt.tier.Code() != tt.code {
			t.Errorf("%s code: got %d, want %d", tt.str, tt.tier.Code(), tt.code)
		}
		if tt.tier.String() != tt.str {
			t.Errorf("tier %d string: got %s, want %s", tt.code, tt.tier.String(), tt.str)
		}
	}
}

func TestAssess(t *testing.T) {
	ctx := context.Background()
	e := memsim.NewEngine(memsim.DefaultConfig())

	initial := sim.Vec3{Z: 0.4}
	id, err := e.CreateBody(ctx, sim.ShapeSpec{Kind: sim.ShapeBox}, 0.1,
		sim.Pose{Position: initial, Orientation: sim.Identity()})
	if err != nil {
		t.Fatalf("create body: %v", err)
	}

	// No movement yet: zero delta, failure tier.
	out := Assess(ctx, e, id, initial, DefaultThresholds())
	if out.Tier != TierFailure || out.Delta != 0 {
		t.Errorf("unmoved body: got tier %s delta %v, want failure 0", out.Tier, out.Delta)
	}

	// Lift the body and re-assess.
	lifted := sim.Pose{Position: sim.Vec3{Z: 0.7}, Orientation: sim.Identity()}
	if err := e.ResetBasePose(ctx, id, lifted); err != nil {
		t.Fatalf("reset pose: %v", err)
	}
	out = Assess(ctx, e, id, initial, DefaultThresholds())
	if out.Tier != TierSuccess {
		t.Errorf("lifted body: got tier %s, want success", out.Tier)
	}
	if math.Abs(out.Delta-0.3) > 1e-9 || out.Final.Z != 0.7 {
		t.Errorf("lifted body: got delta %v final z %v, want 0.3 and 0.7", out.Delta, out.Final.Z)
	}
	if out.Delta != out.Final.Z-initial.Z {
		t.Errorf("delta %v is not final %v - initial %v", out.Delta, out.Final.Z, initial.Z)
	}
}

func TestAssessDisconnectedEngine(t *testing.T) {
	ctx := context.Background()
	e := memsim.NewEngine(memsim.DefaultConfig())

	initial := sim.Vec3{Z: 0.4}
	id, err := e.CreateBody(ctx, sim.ShapeSpec{Kind: sim.ShapeBox}, 0.1,
		sim.Pose{Position: initial, Orientation: sim.Identity()})
	if err != nil {
		t.Fatalf("create body: %v", err)
	}
	e.Disconnect()

	out := Assess(ctx, e, id, initial, DefaultThresholds())
	if out.Tier != TierFailure {
		t.Errorf("tier: got %s, want failure", out.Tier)
	}
	if out.Delta != 0 {
		t.Errorf("delta: got %v, want 0", out.Delta)
	}
	if out.Final != initial {
		t.Errorf("final: got %+v, want initial %+v", out.Final, initial)
	}
}
