// Package gripper implements the manipulator contract over the
// physics capability: a polymorphic set of end-effector variants that
// open, close, teleport, and move vertically under velocity control.
package gripper

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #endregion imports

// #region variants

// Variant tags a supported manipulator family.
type Variant string

const (
	VariantTwoFinger   Variant = "two_finger"
	VariantMultiFinger Variant = "multi_finger"
	VariantPlaceholder Variant = "placeholder"
)

// Variants is the single source of truth for the supported list.
func Variants() []Variant {
	return []Variant{VariantTwoFinger, VariantMultiFinger, VariantPlaceholder}
}

// #endregion variants

// #region contract

// Manipulator is the behavior contract every variant satisfies.
type Manipulator interface {
	// Activate drives the actuated joints to the open configuration.
	// Idempotent: a second call re-sends the same targets.
	Activate(ctx context.Context) error

	// Deactivate drives the actuated joints to the closed
	// configuration and raises gripping friction on them. Safe to
	// call when already closed.
	Deactivate(ctx context.Context) error

	// Relocate teleports the base to a new pose. Instantaneous reset,
	// not a dynamics-consistent move.
	Relocate(ctx context.Context, pose sim.Pose) error

	// VerticalMotion moves the base to targetZ under velocity control:
	// (target - current) / steps per tick for steps ticks, then the
	// velocity is forced to zero. Contact may cause overshoot; that is
	// the intended failure-exposing behavior.
	VerticalMotion(ctx context.Context, targetZ float64, steps int, stepTime time.Duration) error

	Body() sim.BodyID
	Variant() Variant
}

// #endregion contract

// #region variant-specs

// variantSpec is the per-variant geometry: model file, joint target
// angles, and motor forces.
type variantSpec struct {
	modelPath    string
	openTarget   float64
	closeTarget  float64
	openForce    float64
	closeForce   float64
	gripFriction float64
	splayAtSpawn bool // multi-finger hands start splayed open
}

var variantSpecs = map[Variant]variantSpec{
	VariantTwoFinger: {
		modelPath:    "pr2_gripper.urdf",
		openTarget:   0.548,
		closeTarget:  0.0,
		openForce:    100,
		closeForce:   500,
		gripFriction: 1.0,
	},
	VariantMultiFinger: {
		modelPath:    "models/sdh.urdf",
		openTarget:   -0.5, // negative splays the fingers outward
		closeTarget:  1.0,
		openForce:    100,
		closeForce:   500,
		gripFriction: 1.0,
		splayAtSpawn: true,
	},
	VariantPlaceholder: {
		modelPath: "custom_gripper.urdf",
	},
}

// #endregion variant-specs

// #region factory

// New is the canonical variant constructor. An unrecognized variant is
// a configuration error, returned before any engine resource is
// created. The manipulator base is made massless so velocity control
// can move it freely.
func New(ctx context.Context, engine sim.Engine, variant Variant, pose sim.Pose) (Manipulator, error) {
	spec, ok := variantSpecs[variant]
	if !ok {
		return nil, fmt.Errorf("gripper: unsupported variant %q (supported: %v)", variant, Variants())
	}

	pose.Orientation = pose.Orientation.Normalize()
	id, err := engine.LoadModel(ctx, spec.modelPath, pose, false)
	if err != nil {
		return nil, fmt.Errorf("gripper: load model %s: %w", spec.modelPath, err)
	}

	if err := engine.SetDynamics(ctx, id, -1, sim.DynamicsUpdate{Mass: sim.Float64Ptr(0)}); err != nil {
		return nil, fmt.Errorf("gripper: set base mass: %w", err)
	}

	actuated, fixed, err := partitionJoints(ctx, engine, id)
	if err != nil {
		return nil, fmt.Errorf("gripper: joint metadata: %w", err)
	}

	b := base{
		engine:   engine,
		body:     id,
		variant:  variant,
		spec:     spec,
		actuated: actuated,
		fixed:    fixed,
	}

	switch variant {
	case VariantTwoFinger:
		return &twoFinger{b}, nil
	case VariantMultiFinger:
		m := &multiFinger{b}
		if err := m.splay(ctx); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return &placeholder{b}, nil
	}
}

// partitionJoints splits a body's joints into {actuated, fixed}.
func partitionJoints(ctx context.Context, engine sim.Engine, id sim.BodyID) (actuated, fixed []int, err error) {
	n, err := engine.JointCount(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		info, err := engine.JointInfo(ctx, id, i)
		if err != nil {
			return nil, nil, err
		}
		if info.Fixed() {
			fixed = append(fixed, i)
		} else {
			actuated = append(actuated, i)
		}
	}
	return actuated, fixed, nil
}

// #endregion factory

// #region base

// base holds the state shared by all variants.
type base struct {
	engine   sim.Engine
	body     sim.BodyID
	variant  Variant
	spec     variantSpec
	actuated []int
	fixed    []int
}

func (b *base) Body() sim.BodyID { return b.body }

func (b *base) Variant() Variant { return b.variant }

// Relocate teleports the base pose.
func (b *base) Relocate(ctx context.Context, pose sim.Pose) error {
	pose.Orientation = pose.Orientation.Normalize()
	if err := b.engine.ResetBasePose(ctx, b.body, pose); err != nil {
		return fmt.Errorf("gripper: relocate: %w", err)
	}
	return nil
}

// VerticalMotion applies a constant velocity for a fixed tick count.
func (b *base) VerticalMotion(ctx context.Context, targetZ float64, steps int, stepTime time.Duration) error {
	pose, err := b.engine.BasePose(ctx, b.body)
	if err != nil {
		return fmt.Errorf("gripper: vertical motion: %w", err)
	}

	var velocity float64
	if steps > 0 && stepTime > 0 {
		increment := (targetZ - pose.Position.Z) / float64(steps)
		velocity = increment / stepTime.Seconds()
	}

	for i := 0; i < steps; i++ {
		if err := b.engine.ResetBaseVelocity(ctx, b.body, sim.Vec3{Z: velocity}); err != nil {
			return fmt.Errorf("gripper: vertical motion: %w", err)
		}
		if err := b.engine.Step(ctx); err != nil {
			return fmt.Errorf("gripper: vertical motion: %w", err)
		}
	}

	if err := b.engine.ResetBaseVelocity(ctx, b.body, sim.Vec3{}); err != nil {
		return fmt.Errorf("gripper: halt motion: %w", err)
	}
	return nil
}

// driveJoints commands every actuated joint to the same target.
func (b *base) driveJoints(ctx context.Context, target, force float64) error {
	for _, j := range b.actuated {
		err := b.engine.SetJointTarget(ctx, b.body, j, sim.ControlPosition, target, force)
		if err != nil {
			return fmt.Errorf("gripper: joint %d target: %w", j, err)
		}
	}
	return nil
}

// raiseGripFriction raises lateral friction on the actuated joints so
// a closed grip holds.
func (b *base) raiseGripFriction(ctx context.Context) error {
	for _, j := range b.actuated {
		err := b.engine.SetDynamics(ctx, b.body, j, sim.DynamicsUpdate{
			LateralFriction: sim.Float64Ptr(b.spec.gripFriction),
		})
		if err != nil {
			return fmt.Errorf("gripper: joint %d friction: %w", j, err)
		}
	}
	return nil
}

// #endregion base

// #region two-finger

// twoFinger is the PR2-style parallel jaw gripper: two symmetric
// actuated joints.
type twoFinger struct {
	base
}

func (g *twoFinger) Activate(ctx context.Context) error {
	return g.driveJoints(ctx, g.spec.openTarget, g.spec.openForce)
}

func (g *twoFinger) Deactivate(ctx context.Context) error {
	if err := g.driveJoints(ctx, g.spec.closeTarget, g.spec.closeForce); err != nil {
		return err
	}
	return g.raiseGripFriction(ctx)
}

// #endregion two-finger

// #region multi-finger

// multiFinger is the SDH-style dexterous hand: many actuated joints,
// splayed open with negative angles.
type multiFinger struct {
	base
}

// splay teleports the fingers to the open configuration at spawn and
// holds them there.
func (g *multiFinger) splay(ctx context.Context) error {
	for _, j := range g.actuated {
		if err := g.engine.ResetJointState(ctx, g.body, j, g.spec.openTarget); err != nil {
			return fmt.Errorf("gripper: splay joint %d: %w", j, err)
		}
	}
	return g.driveJoints(ctx, g.spec.openTarget, g.spec.openForce)
}

func (g *multiFinger) Activate(ctx context.Context) error {
	return g.driveJoints(ctx, g.spec.openTarget, g.spec.openForce)
}

func (g *multiFinger) Deactivate(ctx context.Context) error {
	if err := g.driveJoints(ctx, g.spec.closeTarget, g.spec.closeForce); err != nil {
		return err
	}
	return g.raiseGripFriction(ctx)
}

// #endregion multi-finger

// #region placeholder

// placeholder is a stub variant with no actuation.
type placeholder struct {
	base
}

func (g *placeholder) Activate(_ context.Context) error {
	log.Printf("[GRIPPER] placeholder: activate is a no-op")
	return nil
}

func (g *placeholder) Deactivate(_ context.Context) error {
	log.Printf("[GRIPPER] placeholder: deactivate is a no-op")
	return nil
}

// #endregion placeholder
