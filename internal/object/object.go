// Package object implements the graspable object contract: passive
// rigid bodies (box, cylinder) with a variant-independent grasp
// reference point at mid-height.
package object

// #region imports
import (
	"context"
	"fmt"

	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #endregion imports

// #region variants

// Variant tags a supported object family.
type Variant string

const (
	VariantBox      Variant = "box"
	VariantCylinder Variant = "cylinder"
)

// Variants is the single source of truth for the supported list.
func Variants() []Variant {
	return []Variant{VariantBox, VariantCylinder}
}

// #endregion variants

// #region contract

// Graspable is the contract every object variant satisfies.
type Graspable interface {
	// GraspCenter is the approach target in the object's own frame:
	// always geometric mid-height, variant-independent.
	GraspCenter() sim.Vec3

	// SpawnPose is the default resting pose: centered at the origin,
	// base on the ground plane.
	SpawnPose() sim.Pose

	// ResetPose teleports the object to pose, or back to the spawn
	// pose when pose is nil.
	ResetPose(ctx context.Context, pose *sim.Pose) error

	// Shape is the visual/collision descriptor used to create the body.
	Shape() sim.ShapeSpec

	Body() sim.BodyID
	Height() float64
	Variant() Variant
}

// #endregion contract

// #region params

// Params are the fixed construction parameters. Zero values take the
// stock dimensions used by the trial generator.
type Params struct {
	Width  float64 // box, X extent
	Depth  float64 // box, Y extent
	Radius float64 // cylinder
	Height float64
	Mass   float64
	Color  [4]float64 // RGBA
}

func (p *Params) applyDefaults(v Variant) {
	if p.Width == 0 {
		p.Width = 0.05
	}
	if p.Depth == 0 {
		p.Depth = 0.05
	}
	if p.Radius == 0 {
		p.Radius = 0.04
	}
	if p.Height == 0 {
		p.Height = 0.8
	}
	if p.Mass == 0 {
		p.Mass = 0.1
	}
	if p.Color == ([4]float64{}) {
		p.Color = [4]float64{1, 1, 1, 1}
	}
}

// #endregion params

// #region factory

// Object dynamics at creation: grippy enough to hold once grasped.
const (
	lateralFriction  = 1.2
	spinningFriction = 0.1
)

// New is the canonical variant constructor. An unrecognized variant is
// a configuration error, returned before any engine resource is
// created. The body is created at its spawn pose with its dynamics
// applied.
func New(ctx context.Context, engine sim.Engine, variant Variant, params Params) (Graspable, error) {
	params.applyDefaults(variant)

	var obj *instance
	switch variant {
	case VariantBox:
		obj = &instance{
			variant: variant,
			params:  params,
			shape: sim.ShapeSpec{
				Kind:        sim.ShapeBox,
				HalfExtents: sim.Vec3{X: params.Width / 2, Y: params.Depth / 2, Z: params.Height / 2},
				Color:       params.Color,
			},
		}
	case VariantCylinder:
		obj = &instance{
			variant: variant,
			params:  params,
			shape: sim.ShapeSpec{
				Kind:   sim.ShapeCylinder,
				Radius: params.Radius,
				Length: params.Height,
				Color:  params.Color,
			},
		}
	default:
		return nil, fmt.Errorf("object: unsupported variant %q (supported: %v)", variant, Variants())
	}

	obj.engine = engine
	id, err := engine.CreateBody(ctx, obj.shape, params.Mass, obj.SpawnPose())
	if err != nil {
		return nil, fmt.Errorf("object: create body: %w", err)
	}
	obj.body = id

	err = engine.SetDynamics(ctx, id, -1, sim.DynamicsUpdate{
		LateralFriction:  sim.Float64Ptr(lateralFriction),
		SpinningFriction: sim.Float64Ptr(spinningFriction),
	})
	if err != nil {
		return nil, fmt.Errorf("object: set dynamics: %w", err)
	}

	return obj, nil
}

// #endregion factory

// #region instance

// instance is the shared implementation; variants differ only in their
// shape descriptor.
type instance struct {
	engine  sim.Engine
	body    sim.BodyID
	variant Variant
	params  Params
	shape   sim.ShapeSpec
}

func (o *instance) Body() sim.BodyID     { return o.body }
func (o *instance) Variant() Variant     { return o.variant }
func (o *instance) Height() float64      { return o.params.Height }
func (o *instance) Shape() sim.ShapeSpec { return o.shape }

func (o *instance) GraspCenter() sim.Vec3 {
	return sim.Vec3{Z: o.params.Height / 2}
}

func (o *instance) SpawnPose() sim.Pose {
	return sim.Pose{
		Position:    sim.Vec3{Z: o.params.Height / 2},
		Orientation: sim.Identity(),
	}
}

func (o *instance) ResetPose(ctx context.Context, pose *sim.Pose) error {
	target := o.SpawnPose()
	if pose != nil {
		target = *pose
		target.Orientation = target.Orientation.Normalize()
	}
	if err := o.engine.ResetBasePose(ctx, o.body, target); err != nil {
		return fmt.Errorf("object: reset pose: %w", err)
	}
	if err := o.engine.ResetBaseVelocity(ctx, o.body, sim.Vec3{}); err != nil {
		return fmt.Errorf("object: reset velocity: %w", err)
	}
	return nil
}

// #endregion instance
