// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: poolledger/admin/v1/admin.proto

package adminv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type TakeSnapshotRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *TakeSnapshotRequest) Reset() {
	*x = TakeSnapshotRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *TakeSnapshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeSnapshotRequest) ProtoMessage() {}

func (x *TakeSnapshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeSnapshotRequest.ProtoReflect.Descriptor instead.
func (*TakeSnapshotRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{0}
}

type TakeSnapshotResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Requested bool `protobuf:"varint,1,opt,name=requested,proto3" json:"requested,omitempty"`
}

func (x *TakeSnapshotResponse) Reset() {
	*x = TakeSnapshotResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *TakeSnapshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeSnapshotResponse) ProtoMessage() {}

func (x *TakeSnapshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeSnapshotResponse.ProtoReflect.Descriptor instead.
func (*TakeSnapshotResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{1}
}

func (x *TakeSnapshotResponse) GetRequested() bool {
	if x != nil {
		return x.Requested
	}
	return false
}

type RebuildProjectionsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *RebuildProjectionsRequest) Reset() {
	*x = RebuildProjectionsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RebuildProjectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsRequest) ProtoMessage() {}

func (x *RebuildProjectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsRequest.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{2}
}

type RebuildProjectionsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Completed bool `protobuf:"varint,1,opt,name=completed,proto3" json:"completed,omitempty"`
}

func (x *RebuildProjectionsResponse) Reset() {
	*x = RebuildProjectionsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RebuildProjectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsResponse) ProtoMessage() {}

func (x *RebuildProjectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsResponse.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *RebuildProjectionsResponse) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

type GetOpLogInfoRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetOpLogInfoRequest) Reset() {
	*x = GetOpLogInfoRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetOpLogInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOpLogInfoRequest) ProtoMessage() {}

func (x *GetOpLogInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOpLogInfoRequest.ProtoReflect.Descriptor instead.
func (*GetOpLogInfoRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{4}
}

type GetOpLogInfoResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	LastSequence int64 `protobuf:"varint,1,opt,name=last_sequence,json=lastSequence,proto3" json:"last_sequence,omitempty"`
}

func (x *GetOpLogInfoResponse) Reset() {
	*x = GetOpLogInfoResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetOpLogInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOpLogInfoResponse) ProtoMessage() {}

func (x *GetOpLogInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOpLogInfoResponse.ProtoReflect.Descriptor instead.
func (*GetOpLogInfoResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *GetOpLogInfoResponse) GetLastSequence() int64 {
	if x != nil {
		return x.LastSequence
	}
	return 0
}

type VerifyIntegrityRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *VerifyIntegrityRequest) Reset() {
	*x = VerifyIntegrityRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *VerifyIntegrityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityRequest) ProtoMessage() {}

func (x *VerifyIntegrityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityRequest.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{6}
}

type VerifyIntegrityResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Passed                bool   `protobuf:"varint,1,opt,name=passed,proto3" json:"passed,omitempty"`
	FirstMismatchSequence int64  `protobuf:"varint,2,opt,name=first_mismatch_sequence,json=firstMismatchSequence,proto3" json:"first_mismatch_sequence,omitempty"`
	ErrorDetail           string `protobuf:"bytes,3,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
}

func (x *VerifyIntegrityResponse) Reset() {
	*x = VerifyIntegrityResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_admin_v1_admin_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *VerifyIntegrityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityResponse) ProtoMessage() {}

func (x *VerifyIntegrityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_admin_v1_admin_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityResponse.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_admin_v1_admin_proto_rawDescGZIP(), []int{7}
}

func (x *VerifyIntegrityResponse) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *VerifyIntegrityResponse) GetFirstMismatchSequence() int64 {
	if x != nil {
		return x.FirstMismatchSequence
	}
	return 0
}

func (x *VerifyIntegrityResponse) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

var File_poolledger_admin_v1_admin_proto protoreflect.FileDescriptor

var file_poolledger_admin_v1_admin_proto_rawDesc = []byte{
	0x0a, 0x1f, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x13, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64,
	0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61,
	0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x22, 0x15, 0x0a, 0x13, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70,
	0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x34, 0x0a, 0x14, 0x54,
	0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x65, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x65,
	0x64, 0x22, 0x1b, 0x0a, 0x19, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a,
	0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x3a,
	0x0a, 0x1a, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1c, 0x0a, 0x09,
	0x63, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x09, 0x63, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x64, 0x22, 0x15, 0x0a, 0x13, 0x47, 0x65,
	0x74, 0x4f, 0x70, 0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x22, 0x3b, 0x0a, 0x14, 0x47, 0x65, 0x74, 0x4f, 0x70, 0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66,
	0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x6c, 0x61, 0x73,
	0x74, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x0c, 0x6c, 0x61, 0x73, 0x74, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x18,
	0x0a, 0x16, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74,
	0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x8c, 0x01, 0x0a, 0x17, 0x56, 0x65, 0x72,
	0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x61, 0x73, 0x73, 0x65, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x61, 0x73, 0x73, 0x65, 0x64, 0x12, 0x36, 0x0a, 0x17,
	0x66, 0x69, 0x72, 0x73, 0x74, 0x5f, 0x6d, 0x69, 0x73, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x73,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x15, 0x66,
	0x69, 0x72, 0x73, 0x74, 0x4d, 0x69, 0x73, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x53, 0x65, 0x71, 0x75,
	0x65, 0x6e, 0x63, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x64, 0x65,
	0x74, 0x61, 0x69, 0x6c, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x65, 0x72, 0x72, 0x6f,
	0x72, 0x44, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x32, 0xbf, 0x04, 0x0a, 0x0c, 0x41, 0x64, 0x6d, 0x69,
	0x6e, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x82, 0x01, 0x0a, 0x0c, 0x54, 0x61, 0x6b,
	0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x12, 0x28, 0x2e, 0x70, 0x6f, 0x6f, 0x6c,
	0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e,
	0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e,
	0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1d,
	0x82, 0xd3, 0xe4, 0x93, 0x02, 0x17, 0x3a, 0x01, 0x2a, 0x22, 0x12, 0x2f, 0x76, 0x31, 0x2f, 0x61,
	0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x73, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x12, 0x9f, 0x01,
	0x0a, 0x12, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x73, 0x12, 0x2e, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x62, 0x75, 0x69,
	0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2f, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x62, 0x75, 0x69,
	0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x28, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x22, 0x3a, 0x01, 0x2a,
	0x22, 0x1d, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x70, 0x72, 0x6f, 0x6a,
	0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x72, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x12,
	0x7c, 0x0a, 0x0c, 0x47, 0x65, 0x74, 0x4f, 0x70, 0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x12,
	0x28, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x4f, 0x70, 0x4c, 0x6f, 0x67, 0x49, 0x6e,
	0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c,
	0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e,
	0x47, 0x65, 0x74, 0x4f, 0x70, 0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x22, 0x17, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x11, 0x12, 0x0f, 0x2f, 0x76,
	0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x6f, 0x70, 0x6c, 0x6f, 0x67, 0x12, 0x89, 0x01,
	0x0a, 0x0f, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74,
	0x79, 0x12, 0x2b, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61,
	0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e,
	0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2c,
	0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69,
	0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67,
	0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1b, 0x82, 0xd3,
	0xe4, 0x93, 0x02, 0x15, 0x3a, 0x01, 0x2a, 0x22, 0x10, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2f, 0x76, 0x65, 0x72, 0x69, 0x66, 0x79, 0x42, 0x2f, 0x5a, 0x2d, 0x50, 0x6f, 0x6f,
	0x6c, 0x4c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x70,
	0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f,
	0x76, 0x31, 0x3b, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x33,
}

var (
	file_poolledger_admin_v1_admin_proto_rawDescOnce sync.Once
	file_poolledger_admin_v1_admin_proto_rawDescData = file_poolledger_admin_v1_admin_proto_rawDesc
)

func file_poolledger_admin_v1_admin_proto_rawDescGZIP() []byte {
	file_poolledger_admin_v1_admin_proto_rawDescOnce.Do(func() {
		file_poolledger_admin_v1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(file_poolledger_admin_v1_admin_proto_rawDescData)
	})
	return file_poolledger_admin_v1_admin_proto_rawDescData
}

var file_poolledger_admin_v1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_poolledger_admin_v1_admin_proto_goTypes = []any{
	(*TakeSnapshotRequest)(nil),        // 0: poolledger.admin.v1.TakeSnapshotRequest
	(*TakeSnapshotResponse)(nil),       // 1: poolledger.admin.v1.TakeSnapshotResponse
	(*RebuildProjectionsRequest)(nil),  // 2: poolledger.admin.v1.RebuildProjectionsRequest
	(*RebuildProjectionsResponse)(nil), // 3: poolledger.admin.v1.RebuildProjectionsResponse
	(*GetOpLogInfoRequest)(nil),        // 4: poolledger.admin.v1.GetOpLogInfoRequest
	(*GetOpLogInfoResponse)(nil),       // 5: poolledger.admin.v1.GetOpLogInfoResponse
	(*VerifyIntegrityRequest)(nil),     // 6: poolledger.admin.v1.VerifyIntegrityRequest
	(*VerifyIntegrityResponse)(nil),    // 7: poolledger.admin.v1.VerifyIntegrityResponse
}
var file_poolledger_admin_v1_admin_proto_depIdxs = []int32{
	0, // 0: poolledger.admin.v1.AdminService.TakeSnapshot:input_type -> poolledger.admin.v1.TakeSnapshotRequest
	2, // 1: poolledger.admin.v1.AdminService.RebuildProjections:input_type -> poolledger.admin.v1.RebuildProjectionsRequest
	4, // 2: poolledger.admin.v1.AdminService.GetOpLogInfo:input_type -> poolledger.admin.v1.GetOpLogInfoRequest
	6, // 3: poolledger.admin.v1.AdminService.VerifyIntegrity:input_type -> poolledger.admin.v1.VerifyIntegrityRequest
	1, // 4: poolledger.admin.v1.AdminService.TakeSnapshot:output_type -> poolledger.admin.v1.TakeSnapshotResponse
	3, // 5: poolledger.admin.v1.AdminService.RebuildProjections:output_type -> poolledger.admin.v1.RebuildProjectionsResponse
	5, // 6: poolledger.admin.v1.AdminService.GetOpLogInfo:output_type -> poolledger.admin.v1.GetOpLogInfoResponse
	7, // 7: poolledger.admin.v1.AdminService.VerifyIntegrity:output_type -> poolledger.admin.v1.VerifyIntegrityResponse
	4, // [4:8] is the sub-list for method output_type
	0, // [0:4] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_poolledger_admin_v1_admin_proto_init() }
func file_poolledger_admin_v1_admin_proto_init() {
	if File_poolledger_admin_v1_admin_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_poolledger_admin_v1_admin_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*TakeSnapshotRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*TakeSnapshotResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*RebuildProjectionsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*RebuildProjectionsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*GetOpLogInfoRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*GetOpLogInfoResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*VerifyIntegrityRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_poolledger_admin_v1_admin_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*VerifyIntegrityResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_poolledger_admin_v1_admin_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_poolledger_admin_v1_admin_proto_goTypes,
		DependencyIndexes: file_poolledger_admin_v1_admin_proto_depIdxs,
		MessageInfos:      file_poolledger_admin_v1_admin_proto_msgTypes,
	}.Build()
	File_poolledger_admin_v1_admin_proto = out.File
	file_poolledger_admin_v1_admin_proto_rawDesc = nil
	file_poolledger_admin_v1_admin_proto_goTypes = nil
	file_poolledger_admin_v1_admin_proto_depIdxs = nil
}
