// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: simbridge.proto

package simbridge

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SimService_LoadModel_FullMethodName         = "/simbridge.SimService/LoadModel"
	SimService_CreateBody_FullMethodName        = "/simbridge.SimService/CreateBody"
	SimService_RemoveBody_FullMethodName        = "/simbridge.SimService/RemoveBody"
	SimService_JointCount_FullMethodName        = "/simbridge.SimService/JointCount"
	SimService_JointInfo_FullMethodName         = "/simbridge.SimService/JointInfo"
	SimService_ResetJointState_FullMethodName   = "/simbridge.SimService/ResetJointState"
	SimService_SetJointTarget_FullMethodName    = "/simbridge.SimService/SetJointTarget"
	SimService_BasePose_FullMethodName          = "/simbridge.SimService/BasePose"
	SimService_ResetBasePose_FullMethodName     = "/simbridge.SimService/ResetBasePose"
	SimService_ResetBaseVelocity_FullMethodName = "/simbridge.SimService/ResetBaseVelocity"
	SimService_SetDynamics_FullMethodName       = "/simbridge.SimService/SetDynamics"
	SimService_Step_FullMethodName              = "/simbridge.SimService/Step"
	SimService_Ping_FullMethodName              = "/simbridge.SimService/Ping"
)

// SimServiceClient is the client API for SimService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SimService is the capability surface of the PyBullet sidecar.
// The Go controller never talks to PyBullet directly; every physics
// operation goes through this contract.
type SimServiceClient interface {
	LoadModel(ctx context.Context, in *LoadModelRequest, opts ...grpc.CallOption) (*LoadModelResponse, error)
	CreateBody(ctx context.Context, in *CreateBodyRequest, opts ...grpc.CallOption) (*CreateBodyResponse, error)
	RemoveBody(ctx context.Context, in *RemoveBodyRequest, opts ...grpc.CallOption) (*RemoveBodyResponse, error)
	JointCount(ctx context.Context, in *JointCountRequest, opts ...grpc.CallOption) (*JointCountResponse, error)
	JointInfo(ctx context.Context, in *JointInfoRequest, opts ...grpc.CallOption) (*JointInfoResponse, error)
	ResetJointState(ctx context.Context, in *ResetJointStateRequest, opts ...grpc.CallOption) (*ResetJointStateResponse, error)
	SetJointTarget(ctx context.Context, in *SetJointTargetRequest, opts ...grpc.CallOption) (*SetJointTargetResponse, error)
	BasePose(ctx context.Context, in *BasePoseRequest, opts ...grpc.CallOption) (*BasePoseResponse, error)
	ResetBasePose(ctx context.Context, in *ResetBasePoseRequest, opts ...grpc.CallOption) (*ResetBasePoseResponse, error)
	ResetBaseVelocity(ctx context.Context, in *ResetBaseVelocityRequest, opts ...grpc.CallOption) (*ResetBaseVelocityResponse, error)
	SetDynamics(ctx context.Context, in *SetDynamicsRequest, opts ...grpc.CallOption) (*SetDynamicsResponse, error)
	Step(ctx context.Context, in *StepRequest, opts ...grpc.CallOption) (*StepResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type simServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSimServiceClient(cc grpc.ClientConnInterface) SimServiceClient {
	return &simServiceClient{cc}
}

func (c *simServiceClient) LoadModel(ctx context.Context, in *LoadModelRequest, opts ...grpc.CallOption) (*LoadModelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadModelResponse)
	err := c.cc.Invoke(ctx, SimService_LoadModel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) CreateBody(ctx context.Context, in *CreateBodyRequest, opts ...grpc.CallOption) (*CreateBodyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateBodyResponse)
	err := c.cc.Invoke(ctx, SimService_CreateBody_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) RemoveBody(ctx context.Context, in *RemoveBodyRequest, opts ...grpc.CallOption) (*RemoveBodyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveBodyResponse)
	err := c.cc.Invoke(ctx, SimService_RemoveBody_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) JointCount(ctx context.Context, in *JointCountRequest, opts ...grpc.CallOption) (*JointCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JointCountResponse)
	err := c.cc.Invoke(ctx, SimService_JointCount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) JointInfo(ctx context.Context, in *JointInfoRequest, opts ...grpc.CallOption) (*JointInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JointInfoResponse)
	err := c.cc.Invoke(ctx, SimService_JointInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) ResetJointState(ctx context.Context, in *ResetJointStateRequest, opts ...grpc.CallOption) (*ResetJointStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetJointStateResponse)
	err := c.cc.Invoke(ctx, SimService_ResetJointState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) SetJointTarget(ctx context.Context, in *SetJointTargetRequest, opts ...grpc.CallOption) (*SetJointTargetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetJointTargetResponse)
	err := c.cc.Invoke(ctx, SimService_SetJointTarget_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) BasePose(ctx context.Context, in *BasePoseRequest, opts ...grpc.CallOption) (*BasePoseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BasePoseResponse)
	err := c.cc.Invoke(ctx, SimService_BasePose_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) ResetBasePose(ctx context.Context, in *ResetBasePoseRequest, opts ...grpc.CallOption) (*ResetBasePoseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetBasePoseResponse)
	err := c.cc.Invoke(ctx, SimService_ResetBasePose_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) ResetBaseVelocity(ctx context.Context, in *ResetBaseVelocityRequest, opts ...grpc.CallOption) (*ResetBaseVelocityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetBaseVelocityResponse)
	err := c.cc.Invoke(ctx, SimService_ResetBaseVelocity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) SetDynamics(ctx context.Context, in *SetDynamicsRequest, opts ...grpc.CallOption) (*SetDynamicsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetDynamicsResponse)
	err := c.cc.Invoke(ctx, SimService_SetDynamics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) Step(ctx context.Context, in *StepRequest, opts ...grpc.CallOption) (*StepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StepResponse)
	err := c.cc.Invoke(ctx, SimService_Step_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, SimService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SimServiceServer is the server API for SimService service.
// All implementations must embed UnimplementedSimServiceServer
// for forward compatibility.
//
// SimService is the capability surface of the PyBullet sidecar.
// The Go controller never talks to PyBullet directly; every physics
// operation goes through this contract.
type SimServiceServer interface {
	LoadModel(context.Context, *LoadModelRequest) (*LoadModelResponse, error)
	CreateBody(context.Context, *CreateBodyRequest) (*CreateBodyResponse, error)
	RemoveBody(context.Context, *RemoveBodyRequest) (*RemoveBodyResponse, error)
	JointCount(context.Context, *JointCountRequest) (*JointCountResponse, error)
	JointInfo(context.Context, *JointInfoRequest) (*JointInfoResponse, error)
	ResetJointState(context.Context, *ResetJointStateRequest) (*ResetJointStateResponse, error)
	SetJointTarget(context.Context, *SetJointTargetRequest) (*SetJointTargetResponse, error)
	BasePose(context.Context, *BasePoseRequest) (*BasePoseResponse, error)
	ResetBasePose(context.Context, *ResetBasePoseRequest) (*ResetBasePoseResponse, error)
	ResetBaseVelocity(context.Context, *ResetBaseVelocityRequest) (*ResetBaseVelocityResponse, error)
	SetDynamics(context.Context, *SetDynamicsRequest) (*SetDynamicsResponse, error)
	Step(context.Context, *StepRequest) (*StepResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	mustEmbedUnimplementedSimServiceServer()
}

// UnimplementedSimServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSimServiceServer struct{}

func (UnimplementedSimServiceServer) LoadModel(context.Context, *LoadModelRequest) (*LoadModelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LoadModel not implemented")
}
func (UnimplementedSimServiceServer) CreateBody(context.Context, *CreateBodyRequest) (*CreateBodyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBody not implemented")
}
func (UnimplementedSimServiceServer) RemoveBody(context.Context, *RemoveBodyRequest) (*RemoveBodyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveBody not implemented")
}
func (UnimplementedSimServiceServer) JointCount(context.Context, *JointCountRequest) (*JointCountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JointCount not implemented")
}
func (UnimplementedSimServiceServer) JointInfo(context.Context, *JointInfoRequest) (*JointInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JointInfo not implemented")
}
func (UnimplementedSimServiceServer) ResetJointState(context.Context, *ResetJointStateRequest) (*ResetJointStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetJointState not implemented")
}
func (UnimplementedSimServiceServer) SetJointTarget(context.Context, *SetJointTargetRequest) (*SetJointTargetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetJointTarget not implemented")
}
func (UnimplementedSimServiceServer) BasePose(context.Context, *BasePoseRequest) (*BasePoseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BasePose not implemented")
}
func (UnimplementedSimServiceServer) ResetBasePose(context.Context, *ResetBasePoseRequest) (*ResetBasePoseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetBasePose not implemented")
}
func (UnimplementedSimServiceServer) ResetBaseVelocity(context.Context, *ResetBaseVelocityRequest) (*ResetBaseVelocityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetBaseVelocity not implemented")
}
func (UnimplementedSimServiceServer) SetDynamics(context.Context, *SetDynamicsRequest) (*SetDynamicsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetDynamics not implemented")
}
func (UnimplementedSimServiceServer) Step(context.Context, *StepRequest) (*StepResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Step not implemented")
}
func (UnimplementedSimServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedSimServiceServer) mustEmbedUnimplementedSimServiceServer() {}
func (UnimplementedSimServiceServer) testEmbeddedByValue()                    {}

// UnsafeSimServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SimServiceServer will
// result in compilation errors.
type UnsafeSimServiceServer interface {
	mustEmbedUnimplementedSimServiceServer()
}

func RegisterSimServiceServer(s grpc.ServiceRegistrar, srv SimServiceServer) {
	// If the following call panics, it indicates UnimplementedSimServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SimService_ServiceDesc, srv)
}

func _SimService_LoadModel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadModelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).LoadModel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_LoadModel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).LoadModel(ctx, req.(*LoadModelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_CreateBody_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBodyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).CreateBody(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_CreateBody_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).CreateBody(ctx, req.(*CreateBodyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_RemoveBody_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveBodyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).RemoveBody(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_RemoveBody_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).RemoveBody(ctx, req.(*RemoveBodyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_JointCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JointCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).JointCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_JointCount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).JointCount(ctx, req.(*JointCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_JointInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JointInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).JointInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_JointInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).JointInfo(ctx, req.(*JointInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_ResetJointState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetJointStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).ResetJointState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_ResetJointState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).ResetJointState(ctx, req.(*ResetJointStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_SetJointTarget_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetJointTargetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).SetJointTarget(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_SetJointTarget_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).SetJointTarget(ctx, req.(*SetJointTargetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_BasePose_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BasePoseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).BasePose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_BasePose_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).BasePose(ctx, req.(*BasePoseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_ResetBasePose_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetBasePoseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).ResetBasePose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_ResetBasePose_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).ResetBasePose(ctx, req.(*ResetBasePoseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_ResetBaseVelocity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetBaseVelocityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).ResetBaseVelocity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_ResetBaseVelocity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).ResetBaseVelocity(ctx, req.(*ResetBaseVelocityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_SetDynamics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetDynamicsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).SetDynamics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_SetDynamics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).SetDynamics(ctx, req.(*SetDynamicsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_Step_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).Step(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_Step_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).Step(ctx, req.(*StepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SimService_ServiceDesc is the grpc.ServiceDesc for SimService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SimService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "simbridge.SimService",
	HandlerType: (*SimServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LoadModel",
			Handler:    _SimService_LoadModel_Handler,
		},
		{
			MethodName: "CreateBody",
			Handler:    _SimService_CreateBody_Handler,
		},
		{
			MethodName: "RemoveBody",
			Handler:    _SimService_RemoveBody_Handler,
		},
		{
			MethodName: "JointCount",
			Handler:    _SimService_JointCount_Handler,
		},
		{
			MethodName: "JointInfo",
			Handler:    _SimService_JointInfo_Handler,
		},
		{
			MethodName: "ResetJointState",
			Handler:    _SimService_ResetJointState_Handler,
		},
		{
			MethodName: "SetJointTarget",
			Handler:    _SimService_SetJointTarget_Handler,
		},
		{
			MethodName: "BasePose",
			Handler:    _SimService_BasePose_Handler,
		},
		{
			MethodName: "ResetBasePose",
			Handler:    _SimService_ResetBasePose_Handler,
		},
		{
			MethodName: "ResetBaseVelocity",
			Handler:    _SimService_ResetBaseVelocity_Handler,
		},
		{
			MethodName: "SetDynamics",
			Handler:    _SimService_SetDynamics_Handler,
		},
		{
			MethodName: "Step",
			Handler:    _SimService_Step_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _SimService_Ping_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "simbridge.proto",
}
