// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: poolledger/ingest/v1/ingest.proto

package ingestv1

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

type SubmitStakeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Caller string `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	AppId  string `protobuf:"bytes,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	// Micro-units.
	Amount int64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *SubmitStakeRequest) Reset() {
	*x = SubmitStakeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SubmitStakeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitStakeRequest) ProtoMessage() {}

func (x *SubmitStakeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitStakeRequest.ProtoReflect.Descriptor instead.
func (*SubmitStakeRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitStakeRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *SubmitStakeRequest) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

func (x *SubmitStakeRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type SubmitRedeemRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Caller string `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	AppId  string `protobuf:"bytes,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *SubmitRedeemRequest) Reset() {
	*x = SubmitRedeemRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SubmitRedeemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitRedeemRequest) ProtoMessage() {}

func (x *SubmitRedeemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitRedeemRequest.ProtoReflect.Descriptor instead.
func (*SubmitRedeemRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitRedeemRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *SubmitRedeemRequest) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

func (x *SubmitRedeemRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type SubmitSettleRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Caller string `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
}

func (x *SubmitSettleRequest) Reset() {
	*x = SubmitSettleRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SubmitSettleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSettleRequest) ProtoMessage() {}

func (x *SubmitSettleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSettleRequest.ProtoReflect.Descriptor instead.
func (*SubmitSettleRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitSettleRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

type AddApplicationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Caller      string `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	AppId       string `protobuf:"bytes,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	Name        string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description string `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
}

func (x *AddApplicationRequest) Reset() {
	*x = AddApplicationRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddApplicationRequest) ProtoMessage() {}

func (x *AddApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddApplicationRequest.ProtoReflect.Descriptor instead.
func (*AddApplicationRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{3}
}

func (x *AddApplicationRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *AddApplicationRequest) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

func (x *AddApplicationRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddApplicationRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type RemoveApplicationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Caller string `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	AppId  string `protobuf:"bytes,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
}

func (x *RemoveApplicationRequest) Reset() {
	*x = RemoveApplicationRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RemoveApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveApplicationRequest) ProtoMessage() {}

func (x *RemoveApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveApplicationRequest.ProtoReflect.Descriptor instead.
func (*RemoveApplicationRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{4}
}

func (x *RemoveApplicationRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *RemoveApplicationRequest) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

type InjectPoolRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Caller string `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *InjectPoolRequest) Reset() {
	*x = InjectPoolRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InjectPoolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InjectPoolRequest) ProtoMessage() {}

func (x *InjectPoolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InjectPoolRequest.ProtoReflect.Descriptor instead.
func (*InjectPoolRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{5}
}

func (x *InjectPoolRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *InjectPoolRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type SubmitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Accepted bool `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (x *SubmitResponse) Reset() {
	*x = SubmitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SubmitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitResponse) ProtoMessage() {}

func (x *SubmitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_ingest_v1_ingest_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitResponse.ProtoReflect.Descriptor instead.
func (*SubmitResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

var File_poolledger_ingest_v1_ingest_proto protoreflect.FileDescriptor

var file_poolledger_ingest_v1_ingest_proto_rawDesc = []byte{
	0x0a, 0x21, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x69, 0x6e, 0x67,
	0x65, 0x73, 0x74, 0x2f, 0x76, 0x31, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x12, 0x14, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e,
	0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c,
	0x65, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x5b, 0x0a, 0x12, 0x53, 0x75, 0x62, 0x6d, 0x69,
	0x74, 0x53, 0x74, 0x61, 0x6b, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a,
	0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63,
	0x61, 0x6c, 0x6c, 0x65, 0x72, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06,
	0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x22, 0x5c, 0x0a, 0x13, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65,
	0x64, 0x65, 0x65, 0x6d, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x63,
	0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63, 0x61, 0x6c,
	0x6c, 0x65, 0x72, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75,
	0x6e, 0x74, 0x22, 0x2d, 0x0a, 0x13, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x65, 0x74, 0x74,
	0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x63, 0x61, 0x6c,
	0x6c, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65,
	0x72, 0x22, 0x7c, 0x0a, 0x15, 0x41, 0x64, 0x64, 0x41, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x63, 0x61,
	0x6c, 0x6c, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63, 0x61, 0x6c, 0x6c,
	0x65, 0x72, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d,
	0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x20, 0x0a,
	0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x22,
	0x49, 0x0a, 0x18, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x41, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x63,
	0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63, 0x61, 0x6c,
	0x6c, 0x65, 0x72, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64, 0x22, 0x43, 0x0a, 0x11, 0x49, 0x6e,
	0x6a, 0x65, 0x63, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x16, 0x0a, 0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e,
	0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x22,
	0x2c, 0x0a, 0x0e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x1a, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x32, 0x92, 0x06,
	0x0a, 0x0d, 0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12,
	0x77, 0x0a, 0x0b, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x74, 0x61, 0x6b, 0x65, 0x12, 0x28,
	0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x74, 0x61, 0x6b,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x18,
	0x82, 0xd3, 0xe4, 0x93, 0x02, 0x12, 0x3a, 0x01, 0x2a, 0x22, 0x0d, 0x2f, 0x76, 0x31, 0x2f, 0x6f,
	0x70, 0x73, 0x2f, 0x73, 0x74, 0x61, 0x6b, 0x65, 0x12, 0x7a, 0x0a, 0x0c, 0x53, 0x75, 0x62, 0x6d,
	0x69, 0x74, 0x52, 0x65, 0x64, 0x65, 0x65, 0x6d, 0x12, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x64, 0x65, 0x65, 0x6d, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69,
	0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x19, 0x82, 0xd3, 0xe4, 0x93, 0x02,
	0x13, 0x3a, 0x01, 0x2a, 0x22, 0x0e, 0x2f, 0x76, 0x31, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x72, 0x65,
	0x64, 0x65, 0x65, 0x6d, 0x12, 0x7a, 0x0a, 0x0c, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x65,
	0x74, 0x74, 0x6c, 0x65, 0x12, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d,
	0x69, 0x74, 0x53, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x24, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67,
	0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x19, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x13, 0x3a, 0x01, 0x2a,
	0x22, 0x0e, 0x2f, 0x76, 0x31, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65,
	0x12, 0x84, 0x01, 0x0a, 0x0e, 0x41, 0x64, 0x64, 0x41, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x12, 0x2b, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x41, 0x70,
	0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x24, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1f, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x19, 0x3a, 0x01,
	0x2a, 0x22, 0x14, 0x2f, 0x76, 0x31, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x61, 0x70, 0x70, 0x6c, 0x69,
	0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x90, 0x01, 0x0a, 0x11, 0x52, 0x65, 0x6d, 0x6f,
	0x76, 0x65, 0x41, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x2e, 0x2e,
	0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x41, 0x70, 0x70, 0x6c, 0x69,
	0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e,
	0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x22, 0x25, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1f, 0x2a, 0x1d, 0x2f, 0x76, 0x31,
	0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x61, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x73, 0x2f, 0x7b, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x7d, 0x12, 0x76, 0x0a, 0x0a, 0x49, 0x6e,
	0x6a, 0x65, 0x63, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x12, 0x27, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x49, 0x6e, 0x6a, 0x65, 0x63, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x24, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69,
	0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x19, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x13, 0x3a,
	0x01, 0x2a, 0x22, 0x0e, 0x2f, 0x76, 0x31, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x69, 0x6e, 0x6a, 0x65,
	0x63, 0x74, 0x42, 0x31, 0x5a, 0x2f, 0x50, 0x6f, 0x6f, 0x6c, 0x4c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67,
	0x65, 0x72, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2f, 0x76, 0x31, 0x3b, 0x69, 0x6e, 0x67,
	0x65, 0x73, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_poolledger_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_poolledger_ingest_v1_ingest_proto_rawDescData = file_poolledger_ingest_v1_ingest_proto_rawDesc
)

func file_poolledger_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_poolledger_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_poolledger_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(file_poolledger_ingest_v1_ingest_proto_rawDescData)
	})
	return file_poolledger_ingest_v1_ingest_proto_rawDescData
}

var file_poolledger_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_poolledger_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitStakeRequest)(nil),       // 0: poolledger.ingest.v1.SubmitStakeRequest
	(*SubmitRedeemRequest)(nil),      // 1: poolledger.ingest.v1.SubmitRedeemRequest
	(*SubmitSettleRequest)(nil),      // 2: poolledger.ingest.v1.SubmitSettleRequest
	(*AddApplicationRequest)(nil),    // 3: poolledger.ingest.v1.AddApplicationRequest
	(*RemoveApplicationRequest)(nil), // 4: poolledger.ingest.v1.RemoveApplicationRequest
	(*InjectPoolRequest)(nil),        // 5: poolledger.ingest.v1.InjectPoolRequest
	(*SubmitResponse)(nil),           // 6: poolledger.ingest.v1.SubmitResponse
}
var file_poolledger_ingest_v1_ingest_proto_depIdxs = []int32{
	0, // 0: poolledger.ingest.v1.IngestService.SubmitStake:input_type -> poolledger.ingest.v1.SubmitStakeRequest
	1, // 1: poolledger.ingest.v1.IngestService.SubmitRedeem:input_type -> poolledger.ingest.v1.SubmitRedeemRequest
	2, // 2: poolledger.ingest.v1.IngestService.SubmitSettle:input_type -> poolledger.ingest.v1.SubmitSettleRequest
	3, // 3: poolledger.ingest.v1.IngestService.AddApplication:input_type -> poolledger.ingest.v1.AddApplicationRequest
	4, // 4: poolledger.ingest.v1.IngestService.RemoveApplication:input_type -> poolledger.ingest.v1.RemoveApplicationRequest
	5, // 5: poolledger.ingest.v1.IngestService.InjectPool:input_type -> poolledger.ingest.v1.InjectPoolRequest
	6, // 6: poolledger.ingest.v1.IngestService.SubmitStake:output_type -> poolledger.ingest.v1.SubmitResponse
	6, // 7: poolledger.ingest.v1.IngestService.SubmitRedeem:output_type -> poolledger.ingest.v1.SubmitResponse
	6, // 8: poolledger.ingest.v1.IngestService.SubmitSettle:output_type -> poolledger.ingest.v1.SubmitResponse
	6, // 9: poolledger.ingest.v1.IngestService.AddApplication:output_type -> poolledger.ingest.v1.SubmitResponse
	6, // 10: poolledger.ingest.v1.IngestService.RemoveApplication:output_type -> poolledger.ingest.v1.SubmitResponse
	6, // 11: poolledger.ingest.v1.IngestService.InjectPool:output_type -> poolledger.ingest.v1.SubmitResponse
	6, // [6:12] is the sub-list for method output_type
	0, // [0:6] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_poolledger_ingest_v1_ingest_proto_init() }
func file_poolledger_ingest_v1_ingest_proto_init() {
	if File_poolledger_ingest_v1_ingest_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_poolledger_ingest_v1_ingest_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*SubmitStakeRequest); i {
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
		file_poolledger_ingest_v1_ingest_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*SubmitRedeemRequest); i {
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
		file_poolledger_ingest_v1_ingest_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*SubmitSettleRequest); i {
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
		file_poolledger_ingest_v1_ingest_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*AddApplicationRequest); i {
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
		file_poolledger_ingest_v1_ingest_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*RemoveApplicationRequest); i {
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
		file_poolledger_ingest_v1_ingest_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*InjectPoolRequest); i {
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
		file_poolledger_ingest_v1_ingest_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*SubmitResponse); i {
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
			RawDescriptor: file_poolledger_ingest_v1_ingest_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_poolledger_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_poolledger_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_poolledger_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_poolledger_ingest_v1_ingest_proto = out.File
	file_poolledger_ingest_v1_ingest_proto_rawDesc = nil
	file_poolledger_ingest_v1_ingest_proto_goTypes = nil
	file_poolledger_ingest_v1_ingest_proto_depIdxs = nil
}
