// Package memsim is a deterministic in-memory implementation of the
// sim.Engine contract. It integrates base velocities, applies joint
// position targets, and models grasping with a capture-radius rule:
// just enough physics to drive the trial pipeline in tests and
// --engine mem dry runs without a PyBullet sidecar.
package memsim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #region config

// Config tunes the kinematic world.
type Config struct {
	// TickSeconds is the simulated duration of one Step call. It
	// matches the default motion step time so velocity-controlled
	// moves land exactly on their targets.
	TickSeconds float64

	// CaptureRadius is the finger reach of a closed gripper: a free
	// body whose base lies within this distance of a gripping body
	// becomes attached to it.
	CaptureRadius float64

	// GripForce is the minimum joint motor force that counts as a
	// gripping command. Close commands use a higher force than open
	// commands, which is what distinguishes them here.
	GripForce float64

	// StepDelay paces wall-clock playback per tick. Zero in headless
	// mode.
	StepDelay time.Duration
}

// DefaultConfig returns the headless defaults.
func DefaultConfig() Config {
	return Config{
		TickSeconds:   0.01,
		CaptureRadius: 0.4,
		GripForce:     200,
	}
}

// #endregion config

// #region world-types

type joint struct {
	kind   sim.JointKind
	pos    float64
	target float64
	force  float64
	mode   sim.ControlMode
	driven bool // a motor command has been issued
}

type body struct {
	pose     sim.Pose
	vel      sim.Vec3
	mass     float64
	shape    sim.ShapeSpec
	model    string
	joints   []joint
	friction map[int]float64
}

// actuated returns the indices of non-fixed joints.
func (b *body) actuated() []int {
	var idx []int
	for i, j := range b.joints {
		if j.kind != sim.JointFixed {
			idx = append(idx, i)
		}
	}
	return idx
}

// gripping reports whether every actuated joint is under a position
// command strong enough to hold a body.
func (b *body) gripping(minForce float64) bool {
	act := b.actuated()
	if len(act) == 0 {
		return false
	}
	for _, i := range act {
		j := b.joints[i]
		if !j.driven || j.mode != sim.ControlPosition || j.force < minForce {
			return false
		}
	}
	return true
}

// #endregion world-types

// #region engine-struct

// Engine is the in-memory world. Safe for use from one goroutine per
// world, like the real engine; the mutex only guards Disconnect racing
// a trial in tests.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	nextID    sim.BodyID
	bodies    map[sim.BodyID]*body
	models    map[string][]sim.JointKind
	connected bool

	// one attachment at a time: held follows holder
	holder sim.BodyID
	held   sim.BodyID
	offset sim.Vec3
	attach bool
}

// NewEngine creates a connected empty world with the stock gripper
// models registered.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		cfg:       cfg,
		bodies:    make(map[sim.BodyID]*body),
		models:    make(map[string][]sim.JointKind),
		connected: true,
	}
	// Joint layouts of the models the gripper package loads.
	e.RegisterModel("pr2_gripper.urdf", []sim.JointKind{
		sim.JointRevolute, sim.JointRevolute, sim.JointFixed, sim.JointFixed,
	})
	e.RegisterModel("models/sdh.urdf", []sim.JointKind{
		sim.JointRevolute, sim.JointRevolute, sim.JointRevolute, sim.JointRevolute,
		sim.JointRevolute, sim.JointRevolute, sim.JointRevolute, sim.JointRevolute,
	})
	e.RegisterModel("custom_gripper.urdf", nil)
	return e
}

// RegisterModel declares the joint layout LoadModel assigns to a path.
func (e *Engine) RegisterModel(path string, kinds []sim.JointKind) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.models[path] = kinds
}

// Disconnect simulates the physics backend going away. Subsequent
// operations fail with sim.ErrDisconnected and Connected reports false.
func (e *Engine) Disconnect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.connected = false
}

func (e *Engine) check() error {
	if !e.connected {
		return sim.ErrDisconnected
	}
	return nil
}

// #endregion engine-struct

// #region lifecycle

// LoadModel instantiates a registered model.
func (e *Engine) LoadModel(_ context.Context, path string, pose sim.Pose, _ bool) (sim.BodyID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return 0, err
	}
	kinds, ok := e.models[path]
	if !ok {
		return 0, fmt.Errorf("memsim: unknown model %q", path)
	}
	b := &body{pose: pose, mass: 1, model: path, friction: make(map[int]float64)}
	for _, k := range kinds {
		b.joints = append(b.joints, joint{kind: k})
	}
	return e.insert(b), nil
}

// CreateBody instantiates a plain rigid body from a shape descriptor.
func (e *Engine) CreateBody(_ context.Context, shape sim.ShapeSpec, mass float64, pose sim.Pose) (sim.BodyID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return 0, err
	}
	b := &body{pose: pose, mass: mass, shape: shape, friction: make(map[int]float64)}
	return e.insert(b), nil
}

func (e *Engine) insert(b *body) sim.BodyID {
	id := e.nextID
	e.nextID++
	e.bodies[id] = b
	return id
}

// RemoveBody deletes a body and drops any attachment involving it.
func (e *Engine) RemoveBody(_ context.Context, id sim.BodyID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	if _, ok := e.bodies[id]; !ok {
		return fmt.Errorf("memsim: no body %d", id)
	}
	delete(e.bodies, id)
	if e.attach && (e.holder == id || e.held == id) {
		e.attach = false
	}
	return nil
}

// #endregion lifecycle

// #region joints

// JointCount returns the number of joints on a body.
func (e *Engine) JointCount(_ context.Context, id sim.BodyID) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return 0, err
	}
	return len(b.joints), nil
}

// JointInfo returns metadata for one joint.
func (e *Engine) JointInfo(_ context.Context, id sim.BodyID, jointIdx int) (sim.JointInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return sim.JointInfo{}, err
	}
	if jointIdx < 0 || jointIdx >= len(b.joints) {
		return sim.JointInfo{}, fmt.Errorf("memsim: body %d has no joint %d", id, jointIdx)
	}
	return sim.JointInfo{Index: jointIdx, Kind: b.joints[jointIdx].kind}, nil
}

// ResetJointState teleports a joint position.
func (e *Engine) ResetJointState(_ context.Context, id sim.BodyID, jointIdx int, position float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return err
	}
	if jointIdx < 0 || jointIdx >= len(b.joints) {
		return fmt.Errorf("memsim: body %d has no joint %d", id, jointIdx)
	}
	b.joints[jointIdx].pos = position
	return nil
}

// SetJointTarget records a motor command; it takes effect on Step.
func (e *Engine) SetJointTarget(_ context.Context, id sim.BodyID, jointIdx int, mode sim.ControlMode, target, force float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return err
	}
	if jointIdx < 0 || jointIdx >= len(b.joints) {
		return fmt.Errorf("memsim: body %d has no joint %d", id, jointIdx)
	}
	j := &b.joints[jointIdx]
	j.mode = mode
	j.target = target
	j.force = force
	j.driven = true
	return nil
}

// JointTargets returns the current position targets of a body's
// actuated joints, for assertions in tests.
func (e *Engine) JointTargets(id sim.BodyID) []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.bodies[id]
	if !ok {
		return nil
	}
	var targets []float64
	for _, i := range b.actuated() {
		targets = append(targets, b.joints[i].target)
	}
	return targets
}

// #endregion joints

// #region base-state

// BasePose returns the current base pose of a body.
func (e *Engine) BasePose(_ context.Context, id sim.BodyID) (sim.Pose, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return sim.Pose{}, err
	}
	return b.pose, nil
}

// ResetBasePose teleports a body. An attached body is released first:
// a teleport is not a dynamics-consistent move.
func (e *Engine) ResetBasePose(_ context.Context, id sim.BodyID, pose sim.Pose) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return err
	}
	if e.attach && (e.holder == id || e.held == id) {
		e.attach = false
	}
	b.pose = pose
	b.vel = sim.Vec3{}
	return nil
}

// ResetBaseVelocity overwrites a body's linear velocity.
func (e *Engine) ResetBaseVelocity(_ context.Context, id sim.BodyID, linear sim.Vec3) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return err
	}
	b.vel = linear
	return nil
}

// SetDynamics applies mass/friction updates.
func (e *Engine) SetDynamics(_ context.Context, id sim.BodyID, link int, update sim.DynamicsUpdate) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, err := e.get(id)
	if err != nil {
		return err
	}
	if update.Mass != nil {
		b.mass = *update.Mass
	}
	if update.LateralFriction != nil {
		b.friction[link] = *update.LateralFriction
	}
	return nil
}

func (e *Engine) get(id sim.BodyID) (*body, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	b, ok := e.bodies[id]
	if !ok {
		return nil, fmt.Errorf("memsim: no body %d", id)
	}
	return b, nil
}

// #endregion base-state

// #region step

// Step advances the world one tick: joints snap to their position
// targets, bodies integrate their base velocity, and the attachment
// rule runs.
func (e *Engine) Step(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}

	for _, b := range e.bodies {
		for i := range b.joints {
			j := &b.joints[i]
			if j.driven && j.mode == sim.ControlPosition {
				j.pos = j.target
			}
		}
		b.pose.Position = b.pose.Position.Add(sim.Vec3{
			X: b.vel.X * e.cfg.TickSeconds,
			Y: b.vel.Y * e.cfg.TickSeconds,
			Z: b.vel.Z * e.cfg.TickSeconds,
		})
	}

	e.updateAttachment()

	if e.attach {
		holder := e.bodies[e.holder]
		held := e.bodies[e.held]
		held.pose.Position = holder.pose.Position.Add(e.offset)
		held.vel = holder.vel
	}

	if e.cfg.StepDelay > 0 {
		e.mu.Unlock()
		time.Sleep(e.cfg.StepDelay)
		e.mu.Lock()
	}
	return nil
}

// updateAttachment attaches the nearest free body within capture
// radius of a gripping articulated body, and releases when the grip
// command goes away.
func (e *Engine) updateAttachment() {
	if e.attach {
		holder, ok := e.bodies[e.holder]
		if !ok || !holder.gripping(e.cfg.GripForce) {
			e.attach = false
			if held, ok := e.bodies[e.held]; ok {
				held.vel = sim.Vec3{}
			}
		}
		return
	}

	for hid, h := range e.bodies {
		if !h.gripping(e.cfg.GripForce) {
			continue
		}
		for tid, t := range e.bodies {
			if tid == hid || len(t.joints) > 0 {
				continue
			}
			d := t.pose.Position.Sub(h.pose.Position)
			if d.X*d.X+d.Y*d.Y+d.Z*d.Z <= e.cfg.CaptureRadius*e.cfg.CaptureRadius {
				e.holder = hid
				e.held = tid
				e.offset = d
				e.attach = true
				return
			}
		}
	}
}

// Connected reports backend reachability.
func (e *Engine) Connected(_ context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.connected
}

// #endregion step
