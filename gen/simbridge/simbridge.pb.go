// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: simbridge.proto

package simbridge

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type LoadModelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Position      []float64              `protobuf:"fixed64,2,rep,packed,name=position,proto3" json:"position,omitempty"`       // x, y, z
	Orientation   []float64              `protobuf:"fixed64,3,rep,packed,name=orientation,proto3" json:"orientation,omitempty"` // quaternion x, y, z, w
	FixedBase     bool                   `protobuf:"varint,4,opt,name=fixed_base,json=fixedBase,proto3" json:"fixed_base,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadModelRequest) Reset() {
	*x = LoadModelRequest{}
	mi := &file_simbridge_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadModelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadModelRequest) ProtoMessage() {}

func (x *LoadModelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadModelRequest.ProtoReflect.Descriptor instead.
func (*LoadModelRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{0}
}

func (x *LoadModelRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *LoadModelRequest) GetPosition() []float64 {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *LoadModelRequest) GetOrientation() []float64 {
	if x != nil {
		return x.Orientation
	}
	return nil
}

func (x *LoadModelRequest) GetFixedBase() bool {
	if x != nil {
		return x.FixedBase
	}
	return false
}

type LoadModelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadModelResponse) Reset() {
	*x = LoadModelResponse{}
	mi := &file_simbridge_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadModelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadModelResponse) ProtoMessage() {}

func (x *LoadModelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadModelResponse.ProtoReflect.Descriptor instead.
func (*LoadModelResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{1}
}

func (x *LoadModelResponse) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

type CreateBodyRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// shape_kind: 0 = box, 1 = cylinder
	ShapeKind     int32     `protobuf:"varint,1,opt,name=shape_kind,json=shapeKind,proto3" json:"shape_kind,omitempty"`
	HalfExtents   []float64 `protobuf:"fixed64,2,rep,packed,name=half_extents,json=halfExtents,proto3" json:"half_extents,omitempty"` // box only: x, y, z
	Radius        float64   `protobuf:"fixed64,3,opt,name=radius,proto3" json:"radius,omitempty"`                                     // cylinder only
	Length        float64   `protobuf:"fixed64,4,opt,name=length,proto3" json:"length,omitempty"`                                     // cylinder only
	Color         []float64 `protobuf:"fixed64,5,rep,packed,name=color,proto3" json:"color,omitempty"`                                // rgba
	Mass          float64   `protobuf:"fixed64,6,opt,name=mass,proto3" json:"mass,omitempty"`
	Position      []float64 `protobuf:"fixed64,7,rep,packed,name=position,proto3" json:"position,omitempty"`
	Orientation   []float64 `protobuf:"fixed64,8,rep,packed,name=orientation,proto3" json:"orientation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBodyRequest) Reset() {
	*x = CreateBodyRequest{}
	mi := &file_simbridge_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBodyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBodyRequest) ProtoMessage() {}

func (x *CreateBodyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBodyRequest.ProtoReflect.Descriptor instead.
func (*CreateBodyRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{2}
}

func (x *CreateBodyRequest) GetShapeKind() int32 {
	if x != nil {
		return x.ShapeKind
	}
	return 0
}

func (x *CreateBodyRequest) GetHalfExtents() []float64 {
	if x != nil {
		return x.HalfExtents
	}
	return nil
}

func (x *CreateBodyRequest) GetRadius() float64 {
	if x != nil {
		return x.Radius
	}
	return 0
}

func (x *CreateBodyRequest) GetLength() float64 {
	if x != nil {
		return x.Length
	}
	return 0
}

func (x *CreateBodyRequest) GetColor() []float64 {
	if x != nil {
		return x.Color
	}
	return nil
}

func (x *CreateBodyRequest) GetMass() float64 {
	if x != nil {
		return x.Mass
	}
	return 0
}

func (x *CreateBodyRequest) GetPosition() []float64 {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *CreateBodyRequest) GetOrientation() []float64 {
	if x != nil {
		return x.Orientation
	}
	return nil
}

type CreateBodyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBodyResponse) Reset() {
	*x = CreateBodyResponse{}
	mi := &file_simbridge_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBodyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBodyResponse) ProtoMessage() {}

func (x *CreateBodyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBodyResponse.ProtoReflect.Descriptor instead.
func (*CreateBodyResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{3}
}

func (x *CreateBodyResponse) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

type RemoveBodyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveBodyRequest) Reset() {
	*x = RemoveBodyRequest{}
	mi := &file_simbridge_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveBodyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveBodyRequest) ProtoMessage() {}

func (x *RemoveBodyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveBodyRequest.ProtoReflect.Descriptor instead.
func (*RemoveBodyRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{4}
}

func (x *RemoveBodyRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

type RemoveBodyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveBodyResponse) Reset() {
	*x = RemoveBodyResponse{}
	mi := &file_simbridge_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveBodyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveBodyResponse) ProtoMessage() {}

func (x *RemoveBodyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveBodyResponse.ProtoReflect.Descriptor instead.
func (*RemoveBodyResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{5}
}

type JointCountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JointCountRequest) Reset() {
	*x = JointCountRequest{}
	mi := &file_simbridge_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JointCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JointCountRequest) ProtoMessage() {}

func (x *JointCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JointCountRequest.ProtoReflect.Descriptor instead.
func (*JointCountRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{6}
}

func (x *JointCountRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

type JointCountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int32                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JointCountResponse) Reset() {
	*x = JointCountResponse{}
	mi := &file_simbridge_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JointCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JointCountResponse) ProtoMessage() {}

func (x *JointCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JointCountResponse.ProtoReflect.Descriptor instead.
func (*JointCountResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{7}
}

func (x *JointCountResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type JointInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	JointIndex    int32                  `protobuf:"varint,2,opt,name=joint_index,json=jointIndex,proto3" json:"joint_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JointInfoRequest) Reset() {
	*x = JointInfoRequest{}
	mi := &file_simbridge_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JointInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JointInfoRequest) ProtoMessage() {}

func (x *JointInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JointInfoRequest.ProtoReflect.Descriptor instead.
func (*JointInfoRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{8}
}

func (x *JointInfoRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

func (x *JointInfoRequest) GetJointIndex() int32 {
	if x != nil {
		return x.JointIndex
	}
	return 0
}

type JointInfoResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// kind: 0 = revolute, 1 = prismatic, 4 = fixed (PyBullet joint type codes)
	Kind          int32 `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JointInfoResponse) Reset() {
	*x = JointInfoResponse{}
	mi := &file_simbridge_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JointInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JointInfoResponse) ProtoMessage() {}

func (x *JointInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JointInfoResponse.ProtoReflect.Descriptor instead.
func (*JointInfoResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{9}
}

func (x *JointInfoResponse) GetKind() int32 {
	if x != nil {
		return x.Kind
	}
	return 0
}

type ResetJointStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	JointIndex    int32                  `protobuf:"varint,2,opt,name=joint_index,json=jointIndex,proto3" json:"joint_index,omitempty"`
	Position      float64                `protobuf:"fixed64,3,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetJointStateRequest) Reset() {
	*x = ResetJointStateRequest{}
	mi := &file_simbridge_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetJointStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetJointStateRequest) ProtoMessage() {}

func (x *ResetJointStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetJointStateRequest.ProtoReflect.Descriptor instead.
func (*ResetJointStateRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{10}
}

func (x *ResetJointStateRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

func (x *ResetJointStateRequest) GetJointIndex() int32 {
	if x != nil {
		return x.JointIndex
	}
	return 0
}

func (x *ResetJointStateRequest) GetPosition() float64 {
	if x != nil {
		return x.Position
	}
	return 0
}

type ResetJointStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetJointStateResponse) Reset() {
	*x = ResetJointStateResponse{}
	mi := &file_simbridge_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetJointStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetJointStateResponse) ProtoMessage() {}

func (x *ResetJointStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetJointStateResponse.ProtoReflect.Descriptor instead.
func (*ResetJointStateResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{11}
}

type SetJointTargetRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	BodyId     int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	JointIndex int32                  `protobuf:"varint,2,opt,name=joint_index,json=jointIndex,proto3" json:"joint_index,omitempty"`
	// mode: 0 = position control, 1 = velocity control
	Mode          int32   `protobuf:"varint,3,opt,name=mode,proto3" json:"mode,omitempty"`
	Target        float64 `protobuf:"fixed64,4,opt,name=target,proto3" json:"target,omitempty"`
	Force         float64 `protobuf:"fixed64,5,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetJointTargetRequest) Reset() {
	*x = SetJointTargetRequest{}
	mi := &file_simbridge_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetJointTargetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetJointTargetRequest) ProtoMessage() {}

func (x *SetJointTargetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetJointTargetRequest.ProtoReflect.Descriptor instead.
func (*SetJointTargetRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{12}
}

func (x *SetJointTargetRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

func (x *SetJointTargetRequest) GetJointIndex() int32 {
	if x != nil {
		return x.JointIndex
	}
	return 0
}

func (x *SetJointTargetRequest) GetMode() int32 {
	if x != nil {
		return x.Mode
	}
	return 0
}

func (x *SetJointTargetRequest) GetTarget() float64 {
	if x != nil {
		return x.Target
	}
	return 0
}

func (x *SetJointTargetRequest) GetForce() float64 {
	if x != nil {
		return x.Force
	}
	return 0
}

type SetJointTargetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetJointTargetResponse) Reset() {
	*x = SetJointTargetResponse{}
	mi := &file_simbridge_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetJointTargetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetJointTargetResponse) ProtoMessage() {}

func (x *SetJointTargetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetJointTargetResponse.ProtoReflect.Descriptor instead.
func (*SetJointTargetResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{13}
}

type BasePoseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BasePoseRequest) Reset() {
	*x = BasePoseRequest{}
	mi := &file_simbridge_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BasePoseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BasePoseRequest) ProtoMessage() {}

func (x *BasePoseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BasePoseRequest.ProtoReflect.Descriptor instead.
func (*BasePoseRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{14}
}

func (x *BasePoseRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

type BasePoseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Position      []float64              `protobuf:"fixed64,1,rep,packed,name=position,proto3" json:"position,omitempty"`
	Orientation   []float64              `protobuf:"fixed64,2,rep,packed,name=orientation,proto3" json:"orientation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BasePoseResponse) Reset() {
	*x = BasePoseResponse{}
	mi := &file_simbridge_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BasePoseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BasePoseResponse) ProtoMessage() {}

func (x *BasePoseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BasePoseResponse.ProtoReflect.Descriptor instead.
func (*BasePoseResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{15}
}

func (x *BasePoseResponse) GetPosition() []float64 {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *BasePoseResponse) GetOrientation() []float64 {
	if x != nil {
		return x.Orientation
	}
	return nil
}

type ResetBasePoseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	Position      []float64              `protobuf:"fixed64,2,rep,packed,name=position,proto3" json:"position,omitempty"`
	Orientation   []float64              `protobuf:"fixed64,3,rep,packed,name=orientation,proto3" json:"orientation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetBasePoseRequest) Reset() {
	*x = ResetBasePoseRequest{}
	mi := &file_simbridge_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetBasePoseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetBasePoseRequest) ProtoMessage() {}

func (x *ResetBasePoseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetBasePoseRequest.ProtoReflect.Descriptor instead.
func (*ResetBasePoseRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{16}
}

func (x *ResetBasePoseRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

func (x *ResetBasePoseRequest) GetPosition() []float64 {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *ResetBasePoseRequest) GetOrientation() []float64 {
	if x != nil {
		return x.Orientation
	}
	return nil
}

type ResetBasePoseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetBasePoseResponse) Reset() {
	*x = ResetBasePoseResponse{}
	mi := &file_simbridge_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetBasePoseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetBasePoseResponse) ProtoMessage() {}

func (x *ResetBasePoseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetBasePoseResponse.ProtoReflect.Descriptor instead.
func (*ResetBasePoseResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{17}
}

type ResetBaseVelocityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BodyId        int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	Linear        []float64              `protobuf:"fixed64,2,rep,packed,name=linear,proto3" json:"linear,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetBaseVelocityRequest) Reset() {
	*x = ResetBaseVelocityRequest{}
	mi := &file_simbridge_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetBaseVelocityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetBaseVelocityRequest) ProtoMessage() {}

func (x *ResetBaseVelocityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetBaseVelocityRequest.ProtoReflect.Descriptor instead.
func (*ResetBaseVelocityRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{18}
}

func (x *ResetBaseVelocityRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

func (x *ResetBaseVelocityRequest) GetLinear() []float64 {
	if x != nil {
		return x.Linear
	}
	return nil
}

type ResetBaseVelocityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetBaseVelocityResponse) Reset() {
	*x = ResetBaseVelocityResponse{}
	mi := &file_simbridge_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetBaseVelocityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetBaseVelocityResponse) ProtoMessage() {}

func (x *ResetBaseVelocityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetBaseVelocityResponse.ProtoReflect.Descriptor instead.
func (*ResetBaseVelocityResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{19}
}

type SetDynamicsRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	BodyId              int32                  `protobuf:"varint,1,opt,name=body_id,json=bodyId,proto3" json:"body_id,omitempty"`
	LinkIndex           int32                  `protobuf:"varint,2,opt,name=link_index,json=linkIndex,proto3" json:"link_index,omitempty"` // -1 for base
	HasMass             bool                   `protobuf:"varint,3,opt,name=has_mass,json=hasMass,proto3" json:"has_mass,omitempty"`
	Mass                float64                `protobuf:"fixed64,4,opt,name=mass,proto3" json:"mass,omitempty"`
	HasLateralFriction  bool                   `protobuf:"varint,5,opt,name=has_lateral_friction,json=hasLateralFriction,proto3" json:"has_lateral_friction,omitempty"`
	LateralFriction     float64                `protobuf:"fixed64,6,opt,name=lateral_friction,json=lateralFriction,proto3" json:"lateral_friction,omitempty"`
	HasSpinningFriction bool                   `protobuf:"varint,7,opt,name=has_spinning_friction,json=hasSpinningFriction,proto3" json:"has_spinning_friction,omitempty"`
	SpinningFriction    float64                `protobuf:"fixed64,8,opt,name=spinning_friction,json=spinningFriction,proto3" json:"spinning_friction,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *SetDynamicsRequest) Reset() {
	*x = SetDynamicsRequest{}
	mi := &file_simbridge_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDynamicsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDynamicsRequest) ProtoMessage() {}

func (x *SetDynamicsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDynamicsRequest.ProtoReflect.Descriptor instead.
func (*SetDynamicsRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{20}
}

func (x *SetDynamicsRequest) GetBodyId() int32 {
	if x != nil {
		return x.BodyId
	}
	return 0
}

func (x *SetDynamicsRequest) GetLinkIndex() int32 {
	if x != nil {
		return x.LinkIndex
	}
	return 0
}

func (x *SetDynamicsRequest) GetHasMass() bool {
	if x != nil {
		return x.HasMass
	}
	return false
}

func (x *SetDynamicsRequest) GetMass() float64 {
	if x != nil {
		return x.Mass
	}
	return 0
}

func (x *SetDynamicsRequest) GetHasLateralFriction() bool {
	if x != nil {
		return x.HasLateralFriction
	}
	return false
}

func (x *SetDynamicsRequest) GetLateralFriction() float64 {
	if x != nil {
		return x.LateralFriction
	}
	return 0
}

func (x *SetDynamicsRequest) GetHasSpinningFriction() bool {
	if x != nil {
		return x.HasSpinningFriction
	}
	return false
}

func (x *SetDynamicsRequest) GetSpinningFriction() float64 {
	if x != nil {
		return x.SpinningFriction
	}
	return 0
}

type SetDynamicsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDynamicsResponse) Reset() {
	*x = SetDynamicsResponse{}
	mi := &file_simbridge_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDynamicsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDynamicsResponse) ProtoMessage() {}

func (x *SetDynamicsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDynamicsResponse.ProtoReflect.Descriptor instead.
func (*SetDynamicsResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{21}
}

type StepRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NumSteps      int32                  `protobuf:"varint,1,opt,name=num_steps,json=numSteps,proto3" json:"num_steps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepRequest) Reset() {
	*x = StepRequest{}
	mi := &file_simbridge_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepRequest) ProtoMessage() {}

func (x *StepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepRequest.ProtoReflect.Descriptor instead.
func (*StepRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{22}
}

func (x *StepRequest) GetNumSteps() int32 {
	if x != nil {
		return x.NumSteps
	}
	return 0
}

type StepResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepResponse) Reset() {
	*x = StepResponse{}
	mi := &file_simbridge_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepResponse) ProtoMessage() {}

func (x *StepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepResponse.ProtoReflect.Descriptor instead.
func (*StepResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{23}
}

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_simbridge_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{24}
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Connected     bool                   `protobuf:"varint,1,opt,name=connected,proto3" json:"connected,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_simbridge_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_simbridge_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_simbridge_proto_rawDescGZIP(), []int{25}
}

func (x *PingResponse) GetConnected() bool {
	if x != nil {
		return x.Connected
	}
	return false
}

var File_simbridge_proto protoreflect.FileDescriptor

const file_simbridge_proto_rawDesc = "" +
	"\n" +
	"\x0fsimbridge.proto\x12\tsimbridge\"\x83\x01\n" +
	"\x10LoadModelRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1a\n" +
	"\bposition\x18\x02 \x03(\x01R\bposition\x12 \n" +
	"\vorientation\x18\x03 \x03(\x01R\vorientation\x12\x1d\n" +
	"\n" +
	"fixed_base\x18\x04 \x01(\bR\tfixedBase\",\n" +
	"\x11LoadModelResponse\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\"\xed\x01\n" +
	"\x11CreateBodyRequest\x12\x1d\n" +
	"\n" +
	"shape_kind\x18\x01 \x01(\x05R\tshapeKind\x12!\n" +
	"\fhalf_extents\x18\x02 \x03(\x01R\vhalfExtents\x12\x16\n" +
	"\x06radius\x18\x03 \x01(\x01R\x06radius\x12\x16\n" +
	"\x06length\x18\x04 \x01(\x01R\x06length\x12\x14\n" +
	"\x05color\x18\x05 \x03(\x01R\x05color\x12\x12\n" +
	"\x04mass\x18\x06 \x01(\x01R\x04mass\x12\x1a\n" +
	"\bposition\x18\a \x03(\x01R\bposition\x12 \n" +
	"\vorientation\x18\b \x03(\x01R\vorientation\"-\n" +
	"\x12CreateBodyResponse\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\",\n" +
	"\x11RemoveBodyRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\"\x14\n" +
	"\x12RemoveBodyResponse\",\n" +
	"\x11JointCountRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\"*\n" +
	"\x12JointCountResponse\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x05R\x05count\"L\n" +
	"\x10JointInfoRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\x12\x1f\n" +
	"\vjoint_index\x18\x02 \x01(\x05R\n" +
	"jointIndex\"'\n" +
	"\x11JointInfoResponse\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\x05R\x04kind\"n\n" +
	"\x16ResetJointStateRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\x12\x1f\n" +
	"\vjoint_index\x18\x02 \x01(\x05R\n" +
	"jointIndex\x12\x1a\n" +
	"\bposition\x18\x03 \x01(\x01R\bposition\"\x19\n" +
	"\x17ResetJointStateResponse\"\x93\x01\n" +
	"\x15SetJointTargetRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\x12\x1f\n" +
	"\vjoint_index\x18\x02 \x01(\x05R\n" +
	"jointIndex\x12\x12\n" +
	"\x04mode\x18\x03 \x01(\x05R\x04mode\x12\x16\n" +
	"\x06target\x18\x04 \x01(\x01R\x06target\x12\x14\n" +
	"\x05force\x18\x05 \x01(\x01R\x05force\"\x18\n" +
	"\x16SetJointTargetResponse\"*\n" +
	"\x0fBasePoseRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\"P\n" +
	"\x10BasePoseResponse\x12\x1a\n" +
	"\bposition\x18\x01 \x03(\x01R\bposition\x12 \n" +
	"\vorientation\x18\x02 \x03(\x01R\vorientation\"m\n" +
	"\x14ResetBasePoseRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\x12\x1a\n" +
	"\bposition\x18\x02 \x03(\x01R\bposition\x12 \n" +
	"\vorientation\x18\x03 \x03(\x01R\vorientation\"\x17\n" +
	"\x15ResetBasePoseResponse\"K\n" +
	"\x18ResetBaseVelocityRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\x12\x16\n" +
	"\x06linear\x18\x02 \x03(\x01R\x06linear\"\x1b\n" +
	"\x19ResetBaseVelocityResponse\"\xb9\x02\n" +
	"\x12SetDynamicsRequest\x12\x17\n" +
	"\abody_id\x18\x01 \x01(\x05R\x06bodyId\x12\x1d\n" +
	"\n" +
	"link_index\x18\x02 \x01(\x05R\tlinkIndex\x12\x19\n" +
	"\bhas_mass\x18\x03 \x01(\bR\ahasMass\x12\x12\n" +
	"\x04mass\x18\x04 \x01(\x01R\x04mass\x120\n" +
	"\x14has_lateral_friction\x18\x05 \x01(\bR\x12hasLateralFriction\x12)\n" +
	"\x10lateral_friction\x18\x06 \x01(\x01R\x0flateralFriction\x122\n" +
	"\x15has_spinning_friction\x18\a \x01(\bR\x13hasSpinningFriction\x12+\n" +
	"\x11spinning_friction\x18\b \x01(\x01R\x10spinningFriction\"\x15\n" +
	"\x13SetDynamicsResponse\"*\n" +
	"\vStepRequest\x12\x1b\n" +
	"\tnum_steps\x18\x01 \x01(\x05R\bnumSteps\"\x0e\n" +
	"\fStepResponse\"\r\n" +
	"\vPingRequest\",\n" +
	"\fPingResponse\x12\x1c\n" +
	"\tconnected\x18\x01 \x01(\bR\tconnected2\xe7\a\n" +
	"\n" +
	"SimService\x12F\n" +
	"\tLoadModel\x12\x1b.simbridge.LoadModelRequest\x1a\x1c.simbridge.LoadModelResponse\x12I\n" +
	"\n" +
	"CreateBody\x12\x1c.simbridge.CreateBodyRequest\x1a\x1d.simbridge.CreateBodyResponse\x12I\n" +
	"\n" +
	"RemoveBody\x12\x1c.simbridge.RemoveBodyRequest\x1a\x1d.simbridge.RemoveBodyResponse\x12I\n" +
	"\n" +
	"JointCount\x12\x1c.simbridge.JointCountRequest\x1a\x1d.simbridge.JointCountResponse\x12F\n" +
	"\tJointInfo\x12\x1b.simbridge.JointInfoRequest\x1a\x1c.simbridge.JointInfoResponse\x12X\n" +
	"\x0fResetJointState\x12!.simbridge.ResetJointStateRequest\x1a\".simbridge.ResetJointStateResponse\x12U\n" +
	"\x0eSetJointTarget\x12 .simbridge.SetJointTargetRequest\x1a!.simbridge.SetJointTargetResponse\x12C\n" +
	"\bBasePose\x12\x1a.simbridge.BasePoseRequest\x1a\x1b.simbridge.BasePoseResponse\x12R\n" +
	"\rResetBasePose\x12\x1f.simbridge.ResetBasePoseRequest\x1a .simbridge.ResetBasePoseResponse\x12^\n" +
	"\x11ResetBaseVelocity\x12#.simbridge.ResetBaseVelocityRequest\x1a$.simbridge.ResetBaseVelocityResponse\x12L\n" +
	"\vSetDynamics\x12\x1d.simbridge.SetDynamicsRequest\x1a\x1e.simbridge.SetDynamicsResponse\x127\n" +
	"\x04Step\x12\x16.simbridge.StepRequest\x1a\x17.simbridge.StepResponse\x127\n" +
	"\x04Ping\x12\x16.simbridge.PingRequest\x1a\x17.simbridge.PingResponseB=Z;github.com/openmanip/graspbench/go-controller/gen/simbridgeb\x06proto3"

var (
	file_simbridge_proto_rawDescOnce sync.Once
	file_simbridge_proto_rawDescData []byte
)

func file_simbridge_proto_rawDescGZIP() []byte {
	file_simbridge_proto_rawDescOnce.Do(func() {
		file_simbridge_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_simbridge_proto_rawDesc), len(file_simbridge_proto_rawDesc)))
	})
	return file_simbridge_proto_rawDescData
}

var file_simbridge_proto_msgTypes = make([]protoimpl.MessageInfo, 26)
var file_simbridge_proto_goTypes = []any{
	(*LoadModelRequest)(nil),          // 0: simbridge.LoadModelRequest
	(*LoadModelResponse)(nil),         // 1: simbridge.LoadModelResponse
	(*CreateBodyRequest)(nil),         // 2: simbridge.CreateBodyRequest
	(*CreateBodyResponse)(nil),        // 3: simbridge.CreateBodyResponse
	(*RemoveBodyRequest)(nil),         // 4: simbridge.RemoveBodyRequest
	(*RemoveBodyResponse)(nil),        // 5: simbridge.RemoveBodyResponse
	(*JointCountRequest)(nil),         // 6: simbridge.JointCountRequest
	(*JointCountResponse)(nil),        // 7: simbridge.JointCountResponse
	(*JointInfoRequest)(nil),          // 8: simbridge.JointInfoRequest
	(*JointInfoResponse)(nil),         // 9: simbridge.JointInfoResponse
	(*ResetJointStateRequest)(nil),    // 10: simbridge.ResetJointStateRequest
	(*ResetJointStateResponse)(nil),   // 11: simbridge.ResetJointStateResponse
	(*SetJointTargetRequest)(nil),     // 12: simbridge.SetJointTargetRequest
	(*SetJointTargetResponse)(nil),    // 13: simbridge.SetJointTargetResponse
	(*BasePoseRequest)(nil),           // 14: simbridge.BasePoseRequest
	(*BasePoseResponse)(nil),          // 15: simbridge.BasePoseResponse
	(*ResetBasePoseRequest)(nil),      // 16: simbridge.ResetBasePoseRequest
	(*ResetBasePoseResponse)(nil),     // 17: simbridge.ResetBasePoseResponse
	(*ResetBaseVelocityRequest)(nil),  // 18: simbridge.ResetBaseVelocityRequest
	(*ResetBaseVelocityResponse)(nil), // 19: simbridge.ResetBaseVelocityResponse
	(*SetDynamicsRequest)(nil),        // 20: simbridge.SetDynamicsRequest
	(*SetDynamicsResponse)(nil),       // 21: simbridge.SetDynamicsResponse
	(*StepRequest)(nil),               // 22: simbridge.StepRequest
	(*StepResponse)(nil),              // 23: simbridge.StepResponse
	(*PingRequest)(nil),               // 24: simbridge.PingRequest
	(*PingResponse)(nil),              // 25: simbridge.PingResponse
}
var file_simbridge_proto_depIdxs = []int32{
	0,  // 0: simbridge.SimService.LoadModel:input_type -> simbridge.LoadModelRequest
	2,  // 1: simbridge.SimService.CreateBody:input_type -> simbridge.CreateBodyRequest
	4,  // 2: simbridge.SimService.RemoveBody:input_type -> simbridge.RemoveBodyRequest
	6,  // 3: simbridge.SimService.JointCount:input_type -> simbridge.JointCountRequest
	8,  // 4: simbridge.SimService.JointInfo:input_type -> simbridge.JointInfoRequest
	10, // 5: simbridge.SimService.ResetJointState:input_type -> simbridge.ResetJointStateRequest
	12, // 6: simbridge.SimService.SetJointTarget:input_type -> simbridge.SetJointTargetRequest
	14, // 7: simbridge.SimService.BasePose:input_type -> simbridge.BasePoseRequest
	16, // 8: simbridge.SimService.ResetBasePose:input_type -> simbridge.ResetBasePoseRequest
	18, // 9: simbridge.SimService.ResetBaseVelocity:input_type -> simbridge.ResetBaseVelocityRequest
	20, // 10: simbridge.SimService.SetDynamics:input_type -> simbridge.SetDynamicsRequest
	22, // 11: simbridge.SimService.Step:input_type -> simbridge.StepRequest
	24, // 12: simbridge.SimService.Ping:input_type -> simbridge.PingRequest
	1,  // 13: simbridge.SimService.LoadModel:output_type -> simbridge.LoadModelResponse
	3,  // 14: simbridge.SimService.CreateBody:output_type -> simbridge.CreateBodyResponse
	5,  // 15: simbridge.SimService.RemoveBody:output_type -> simbridge.RemoveBodyResponse
	7,  // 16: simbridge.SimService.JointCount:output_type -> simbridge.JointCountResponse
	9,  // 17: simbridge.SimService.JointInfo:output_type -> simbridge.JointInfoResponse
	11, // 18: simbridge.SimService.ResetJointState:output_type -> simbridge.ResetJointStateResponse
	13, // 19: simbridge.SimService.SetJointTarget:output_type -> simbridge.SetJointTargetResponse
	15, // 20: simbridge.SimService.BasePose:output_type -> simbridge.BasePoseResponse
	17, // 21: simbridge.SimService.ResetBasePose:output_type -> simbridge.ResetBasePoseResponse
	19, // 22: simbridge.SimService.ResetBaseVelocity:output_type -> simbridge.ResetBaseVelocityResponse
	21, // 23: simbridge.SimService.SetDynamics:output_type -> simbridge.SetDynamicsResponse
	23, // 24: simbridge.SimService.Step:output_type -> simbridge.StepResponse
	25, // 25: simbridge.SimService.Ping:output_type -> simbridge.PingResponse
	13, // [13:26] is the sub-list for method output_type
	0,  // [0:13] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_simbridge_proto_init() }
func file_simbridge_proto_init() {
	if File_simbridge_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_simbridge_proto_rawDesc), len(file_simbridge_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   26,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_simbridge_proto_goTypes,
		DependencyIndexes: file_simbridge_proto_depIdxs,
		MessageInfos:      file_simbridge_proto_msgTypes,
	}.Build()
	File_simbridge_proto = out.File
	file_simbridge_proto_goTypes = nil
	file_simbridge_proto_depIdxs = nil
}
