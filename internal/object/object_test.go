package object

import (
	"context"
	"testing"

	"github.com/openmanip/graspbench/go-controller/internal/memsim"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

func newObject(t *testing.T, v Variant, params Params) (*memsim.Engine, Graspable) {
	t.Helper()
	e := memsim.NewEngine(memsim.DefaultConfig())
	obj, err := New(context.Background(), e, v, params)
	if err != nil {
		t.Fatalf("new %s: %v", v, err)
	}
	return e, obj
}

func TestNewRejectsUnknownVariant(t *testing.T) {
	// A nil engine proves validation happens before any engine call.
	_, err := New(context.Background(), nil, Variant("sphere"), Params{})
	if err == nil {
		t.Fatal("unknown variant: expected error")
	}
}

func TestDefaultGeometry(t *testing.T) {
	tests := []struct {
		variant Variant
		check   func(t *testing.T, shape sim.ShapeSpec)
	}{
		{VariantBox, func(t *testing.T, shape sim.ShapeSpec) {
			if shape.Kind != sim.ShapeBox {
				t.Errorf("kind: got %v, want box", shape.Kind)
			}
			want := sim.Vec3{X: 0.025, Y: 0.025, Z: 0.4}
			if shape.HalfExtents != want {
				t.Errorf("half extents: got %+v, want %+v", shape.HalfExtents, want)
			}
		}},
		{VariantCylinder, func(t *testing.T, shape sim.ShapeSpec) {
			if shape.Kind != sim.ShapeCylinder {
				t.Errorf("kind: got %v, want cylinder", shape.Kind)
			}
			if shape.Radius != 0.04 {
				t.Errorf("radius: got %v, want 0.04", shape.Radius)
			}
			if shape.Length != 0.8 {
				t.Errorf("length: got %v, want 0.8", shape.Length)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			_, obj := newObject(t, tt.variant, Params{})
			if obj.Height() != 0.8 {
				t.Errorf("height: got %v, want 0.8", obj.Height())
			}
			tt.check(t, obj.Shape())
		})
	}
}

func TestGraspCenterMidHeight(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		wantZ  float64
	}{
		{"default", Params{}, 0.4},
		{"tall", Params{Height: 1.2}, 0.6},
		{"short", Params{Height: 0.2}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range Variants() {
				_, obj := newObject(t, v, tt.params)
				center := obj.GraspCenter()
				if center.Z != tt.wantZ || center.X != 0 || center.Y != 0 {
					t.Errorf("%s grasp center: got %+v, want {0 0 %v}", v, center, tt.wantZ)
				}
			}
		})
	}
}

func TestSpawnPoseRestsOnGround(t *testing.T) {
	e, obj := newObject(t, VariantBox, Params{})

	spawn := obj.SpawnPose()
	if spawn.Position.Z != 0.4 {
		t.Errorf("spawn z: got %v, want 0.4", spawn.Position.Z)
	}
	if spawn.Orientation != sim.Identity() {
		t.Errorf("spawn orientation: got %+v, want identity", spawn.Orientation)
	}

	// The body is created already resting at the spawn pose.
	pose, err := e.BasePose(context.Background(), obj.Body())
	if err != nil {
		t.Fatalf("base pose: %v", err)
	}
	if pose != spawn {
		t.Errorf("created pose: got %+v, want %+v", pose, spawn)
	}
}

func TestResetPose(t *testing.T) {
	ctx := context.Background()
	e, obj := newObject(t, VariantCylinder, Params{})

	moved := sim.Pose{Position: sim.Vec3{X: 1, Z: 2}, Orientation: sim.Identity()}
	if err := obj.ResetPose(ctx, &moved); err != nil {
		t.Fatalf("reset to pose: %v", err)
	}
	pose, _ := e.BasePose(ctx, obj.Body())
	if pose != moved {
		t.Errorf("after explicit reset: got %+v, want %+v", pose, moved)
	}

	// nil means back to spawn.
	if err := obj.ResetPose(ctx, nil); err != nil {
		t.Fatalf("reset to spawn: %v", err)
	}
	pose, _ = e.BasePose(ctx, obj.Body())
	if pose != obj.SpawnPose() {
		t.Errorf("after nil reset: got %+v, want spawn %+v", pose, obj.SpawnPose())
	}
}
