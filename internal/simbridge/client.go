// Package simbridge implements the sim.Engine contract over gRPC
// against the PyBullet sidecar.
package simbridge

//go:generate protoc --go_out=../.. --go-grpc_out=../.. --proto_path=../../proto ../../proto/simbridge.proto

import (
	"context"
	"fmt"

	pb "github.com/openmanip/graspbench/go-controller/gen/simbridge"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #region client-struct
// Client wraps the gRPC connection to the PyBullet sidecar. It
// satisfies sim.Engine.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SimServiceClient
}

var _ sim.Engine = (*Client)(nil)

// #endregion client-struct

// #region constructor
// NewClient connects to the sidecar's gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSimServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SimServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region model-lifecycle
// LoadModel loads a URDF model on the sidecar.
func (c *Client) LoadModel(ctx context.Context, path string, pose sim.Pose, fixedBase bool) (sim.BodyID, error) {
	resp, err := c.client.LoadModel(ctx, &pb.LoadModelRequest{
		Path:        path,
		Position:    positionSlice(pose.Position),
		Orientation: orientationSlice(pose.Orientation),
		FixedBase:   fixedBase,
	})
	if err != nil {
		return 0, fmt.Errorf("load model rpc: %w", err)
	}
	return sim.BodyID(resp.BodyId), nil
}

// CreateBody creates a rigid body from a shape descriptor.
func (c *Client) CreateBody(ctx context.Context, shape sim.ShapeSpec, mass float64, pose sim.Pose) (sim.BodyID, error) {
	resp, err := c.client.CreateBody(ctx, &pb.CreateBodyRequest{
		ShapeKind:   int32(shape.Kind),
		HalfExtents: positionSlice(shape.HalfExtents),
		Radius:      shape.Radius,
		Length:      shape.Length,
		Color:       shape.Color[:],
		Mass:        mass,
		Position:    positionSlice(pose.Position),
		Orientation: orientationSlice(pose.Orientation),
	})
	if err != nil {
		return 0, fmt.Errorf("create body rpc: %w", err)
	}
	return sim.BodyID(resp.BodyId), nil
}

// RemoveBody deletes a body on the sidecar.
func (c *Client) RemoveBody(ctx context.Context, id sim.BodyID) error {
	_, err := c.client.RemoveBody(ctx, &pb.RemoveBodyRequest{BodyId: int32(id)})
	if err != nil {
		return fmt.Errorf("remove body rpc: %w", err)
	}
	return nil
}

// #endregion model-lifecycle

// #region joints
// JointCount queries the number of joints on a body.
func (c *Client) JointCount(ctx context.Context, id sim.BodyID) (int, error) {
	resp, err := c.client.JointCount(ctx, &pb.JointCountRequest{BodyId: int32(id)})
	if err != nil {
		return 0, fmt.Errorf("joint count rpc: %w", err)
	}
	return int(resp.Count), nil
}

// JointInfo queries metadata for one joint.
func (c *Client) JointInfo(ctx context.Context, id sim.BodyID, joint int) (sim.JointInfo, error) {
	resp, err := c.client.JointInfo(ctx, &pb.JointInfoRequest{
		BodyId:     int32(id),
		JointIndex: int32(joint),
	})
	if err != nil {
		return sim.JointInfo{}, fmt.Errorf("joint info rpc: %w", err)
	}
	return sim.JointInfo{Index: joint, Kind: sim.JointKind(resp.Kind)}, nil
}

// ResetJointState teleports a joint position.
func (c *Client) ResetJointState(ctx context.Context, id sim.BodyID, joint int, position float64) error {
	_, err := c.client.ResetJointState(ctx, &pb.ResetJointStateRequest{
		BodyId:     int32(id),
		JointIndex: int32(joint),
		Position:   position,
	})
	if err != nil {
		return fmt.Errorf("reset joint state rpc: %w", err)
	}
	return nil
}

// SetJointTarget commands a joint motor.
func (c *Client) SetJointTarget(ctx context.Context, id sim.BodyID, joint int, mode sim.ControlMode, target, force float64) error {
	_, err := c.client.SetJointTarget(ctx, &pb.SetJointTargetRequest{
		BodyId:     int32(id),
		JointIndex: int32(joint),
		Mode:       int32(mode),
		Target:     target,
		Force:      force,
	})
	if err != nil {
		return fmt.Errorf("set joint target rpc: %w", err)
	}
	return nil
}

// #endregion joints

// #region base-state
// BasePose queries a body's base pose.
func (c *Client) BasePose(ctx context.Context, id sim.BodyID) (sim.Pose, error) {
	resp, err := c.client.BasePose(ctx, &pb.BasePoseRequest{BodyId: int32(id)})
	if err != nil {
		return sim.Pose{}, fmt.Errorf("base pose rpc: %w", err)
	}
	return sim.Pose{
		Position:    vec3FromSlice(resp.Position),
		Orientation: quatFromSlice(resp.Orientation),
	}, nil
}

// ResetBasePose teleports a body base.
func (c *Client) ResetBasePose(ctx context.Context, id sim.BodyID, pose sim.Pose) error {
	_, err := c.client.ResetBasePose(ctx, &pb.ResetBasePoseRequest{
		BodyId:      int32(id),
		Position:    positionSlice(pose.Position),
		Orientation: orientationSlice(pose.Orientation),
	})
	if err != nil {
		return fmt.Errorf("reset base pose rpc: %w", err)
	}
	return nil
}

// ResetBaseVelocity overwrites a body's linear velocity.
func (c *Client) ResetBaseVelocity(ctx context.Context, id sim.BodyID, linear sim.Vec3) error {
	_, err := c.client.ResetBaseVelocity(ctx, &pb.ResetBaseVelocityRequest{
		BodyId: int32(id),
		Linear: positionSlice(linear),
	})
	if err != nil {
		return fmt.Errorf("reset base velocity rpc: %w", err)
	}
	return nil
}

// SetDynamics updates mass/friction on a body link.
func (c *Client) SetDynamics(ctx context.Context, id sim.BodyID, link int, update sim.DynamicsUpdate) error {
	req := &pb.SetDynamicsRequest{
		BodyId:    int32(id),
		LinkIndex: int32(link),
	}
	if update.Mass != nil {
		req.HasMass = true
		req.Mass = *update.Mass
	}
	if update.LateralFriction != nil {
		req.HasLateralFriction = true
		req.LateralFriction = *update.LateralFriction
	}
	if update.SpinningFriction != nil {
		req.HasSpinningFriction = true
		req.SpinningFriction = *update.SpinningFriction
	}
	if _, err := c.client.SetDynamics(ctx, req); err != nil {
		return fmt.Errorf("set dynamics rpc: %w", err)
	}
	return nil
}

// #endregion base-state

// #region step
// Step advances simulated time by one tick.
func (c *Client) Step(ctx context.Context) error {
	if _, err := c.client.Step(ctx, &pb.StepRequest{NumSteps: 1}); err != nil {
		return fmt.Errorf("step rpc: %w", err)
	}
	return nil
}

// Connected pings the sidecar; any RPC failure reads as disconnected.
func (c *Client) Connected(ctx context.Context) bool {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return false
	}
	return resp.Connected
}

// #endregion step

// #region helpers
func positionSlice(v sim.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func orientationSlice(q sim.Quat) []float64 {
	q = q.Normalize()
	return []float64{q.X, q.Y, q.Z, q.W}
}

func vec3FromSlice(s []float64) sim.Vec3 {
	if len(s) < 3 {
		return sim.Vec3{}
	}
	return sim.Vec3{X: s[0], Y: s[1], Z: s[2]}
}

func quatFromSlice(s []float64) sim.Quat {
	if len(s) < 4 {
		return sim.Identity()
	}
	return sim.Quat{X: s[0], Y: s[1], Z: s[2], W: s[3]}
}

// #endregion helpers
