package sim

// #region vectors

// Vec3 is a position or linear velocity in world coordinates (meters).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// #endregion vectors

// #region pose

// Pose is a rigid-body base pose. The orientation must be normalized
// before it is handed to the engine.
type Pose struct {
	Position    Vec3
	Orientation Quat
}

// #endregion pose

// #region bodies

// BodyID identifies a body inside the physics engine.
type BodyID int32

// #endregion bodies

// #region joints

// JointKind mirrors the PyBullet joint type codes the sidecar reports.
type JointKind int32

const (
	JointRevolute  JointKind = 0
	JointPrismatic JointKind = 1
	JointFixed     JointKind = 4
)

// JointInfo is the joint metadata the controller needs: index and kind.
type JointInfo struct {
	Index int
	Kind  JointKind
}

// Fixed reports whether the joint cannot be actuated.
func (j JointInfo) Fixed() bool {
	return j.Kind == JointFixed
}

// #endregion joints

// #region control

// ControlMode selects how a joint target is interpreted.
type ControlMode int32

const (
	ControlPosition ControlMode = 0
	ControlVelocity ControlMode = 1
)

// #endregion control

// #region shapes

// ShapeKind selects the collision/visual geometry of a created body.
type ShapeKind int32

const (
	ShapeBox      ShapeKind = 0
	ShapeCylinder ShapeKind = 1
)

// ShapeSpec describes the visual and collision geometry of a graspable
// body. Box shapes use HalfExtents; cylinders use Radius and Length.
type ShapeSpec struct {
	Kind        ShapeKind
	HalfExtents Vec3
	Radius      float64
	Length      float64
	Color       [4]float64
}

// #endregion shapes

// #region dynamics

// DynamicsUpdate carries the mutable dynamics parameters. Nil fields
// are left unchanged by the engine.
type DynamicsUpdate struct {
	Mass             *float64
	LateralFriction  *float64
	SpinningFriction *float64
}

// Float64Ptr is a convenience for building DynamicsUpdate literals.
func Float64Ptr(v float64) *float64 {
	return &v
}

// #endregion dynamics
