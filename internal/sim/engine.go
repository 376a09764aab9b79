package sim

import (
	"context"
	"errors"
)

// #region errors

// ErrDisconnected is returned by engine operations after the physics
// backend has gone away. The outcome classifier treats it as a failed
// grasp rather than an error; everything else propagates it.
var ErrDisconnected = errors.New("sim: engine disconnected")

// #endregion errors

// #region engine

// Engine is the physics capability contract. The trial pipeline only
// ever touches the simulator through this interface; concrete
// implementations are the gRPC bridge to the PyBullet sidecar and the
// in-memory kinematic engine used for tests and dry runs.
//
// Every call blocks until the engine has updated its internal state.
// There is no background stepping: simulated time advances only
// through explicit Step calls.
type Engine interface {
	// LoadModel loads an articulated model (URDF on the sidecar) and
	// returns its body handle.
	LoadModel(ctx context.Context, path string, pose Pose, fixedBase bool) (BodyID, error)

	// CreateBody creates a rigid body from a shape descriptor.
	CreateBody(ctx context.Context, shape ShapeSpec, mass float64, pose Pose) (BodyID, error)

	// RemoveBody deletes a body from the world.
	RemoveBody(ctx context.Context, id BodyID) error

	// JointCount returns the number of joints on a body.
	JointCount(ctx context.Context, id BodyID) (int, error)

	// JointInfo returns metadata for one joint.
	JointInfo(ctx context.Context, id BodyID, joint int) (JointInfo, error)

	// ResetJointState teleports a joint to a position without dynamics.
	ResetJointState(ctx context.Context, id BodyID, joint int, position float64) error

	// SetJointTarget commands a joint motor.
	SetJointTarget(ctx context.Context, id BodyID, joint int, mode ControlMode, target, force float64) error

	// BasePose returns the current base pose of a body.
	BasePose(ctx context.Context, id BodyID) (Pose, error)

	// ResetBasePose teleports a body base to a pose without dynamics.
	ResetBasePose(ctx context.Context, id BodyID, pose Pose) error

	// ResetBaseVelocity overwrites a body's linear base velocity.
	ResetBaseVelocity(ctx context.Context, id BodyID, linear Vec3) error

	// SetDynamics updates mass/friction on a body link (-1 = base).
	SetDynamics(ctx context.Context, id BodyID, link int, update DynamicsUpdate) error

	// Step advances simulated time by one fixed tick.
	Step(ctx context.Context) error

	// Connected reports whether the physics backend is reachable.
	Connected(ctx context.Context) bool
}

// #endregion engine
