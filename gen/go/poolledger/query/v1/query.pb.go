// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: poolledger/query/v1/query.proto

package queryv1

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

type GetBalanceRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{0}
}

func (x *GetBalanceRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type GetBalanceResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Owner        string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Balance      int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	AsOfSequence int64  `protobuf:"varint,3,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{1}
}

func (x *GetBalanceResponse) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *GetBalanceResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *GetBalanceResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type ListUserBetsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (x *ListUserBetsRequest) Reset() {
	*x = ListUserBetsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListUserBetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUserBetsRequest) ProtoMessage() {}

func (x *ListUserBetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUserBetsRequest.ProtoReflect.Descriptor instead.
func (*ListUserBetsRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{2}
}

func (x *ListUserBetsRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type BetRecord struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AppId       string `protobuf:"bytes,1,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	Amount      int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	UpdatedAtUs int64  `protobuf:"varint,3,opt,name=updated_at_us,json=updatedAtUs,proto3" json:"updated_at_us,omitempty"`
}

func (x *BetRecord) Reset() {
	*x = BetRecord{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BetRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BetRecord) ProtoMessage() {}

func (x *BetRecord) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BetRecord.ProtoReflect.Descriptor instead.
func (*BetRecord) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{3}
}

func (x *BetRecord) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

func (x *BetRecord) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *BetRecord) GetUpdatedAtUs() int64 {
	if x != nil {
		return x.UpdatedAtUs
	}
	return 0
}

type ListUserBetsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Owner        string       `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Bets         []*BetRecord `protobuf:"bytes,2,rep,name=bets,proto3" json:"bets,omitempty"`
	AsOfSequence int64        `protobuf:"varint,3,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
}

func (x *ListUserBetsResponse) Reset() {
	*x = ListUserBetsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListUserBetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUserBetsResponse) ProtoMessage() {}

func (x *ListUserBetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUserBetsResponse.ProtoReflect.Descriptor instead.
func (*ListUserBetsResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{4}
}

func (x *ListUserBetsResponse) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *ListUserBetsResponse) GetBets() []*BetRecord {
	if x != nil {
		return x.Bets
	}
	return nil
}

func (x *ListUserBetsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetEarningsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (x *GetEarningsRequest) Reset() {
	*x = GetEarningsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetEarningsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEarningsRequest) ProtoMessage() {}

func (x *GetEarningsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEarningsRequest.ProtoReflect.Descriptor instead.
func (*GetEarningsRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{5}
}

func (x *GetEarningsRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type GetEarningsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Owner        string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Daily        int64  `protobuf:"varint,2,opt,name=daily,proto3" json:"daily,omitempty"`
	Weekly       int64  `protobuf:"varint,3,opt,name=weekly,proto3" json:"weekly,omitempty"`
	Monthly      int64  `protobuf:"varint,4,opt,name=monthly,proto3" json:"monthly,omitempty"`
	AsOfSequence int64  `protobuf:"varint,5,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
}

func (x *GetEarningsResponse) Reset() {
	*x = GetEarningsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetEarningsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEarningsResponse) ProtoMessage() {}

func (x *GetEarningsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEarningsResponse.ProtoReflect.Descriptor instead.
func (*GetEarningsResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{6}
}

func (x *GetEarningsResponse) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *GetEarningsResponse) GetDaily() int64 {
	if x != nil {
		return x.Daily
	}
	return 0
}

func (x *GetEarningsResponse) GetWeekly() int64 {
	if x != nil {
		return x.Weekly
	}
	return 0
}

func (x *GetEarningsResponse) GetMonthly() int64 {
	if x != nil {
		return x.Monthly
	}
	return 0
}

func (x *GetEarningsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetAppInfoRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AppId string `protobuf:"bytes,1,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
}

func (x *GetAppInfoRequest) Reset() {
	*x = GetAppInfoRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAppInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAppInfoRequest) ProtoMessage() {}

func (x *GetAppInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAppInfoRequest.ProtoReflect.Descriptor instead.
func (*GetAppInfoRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{7}
}

func (x *GetAppInfoRequest) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

type AppInfo struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AppId        string `protobuf:"bytes,1,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	Name         string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description  string `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	AddedAtUs    int64  `protobuf:"varint,4,opt,name=added_at_us,json=addedAtUs,proto3" json:"added_at_us,omitempty"`
	IsActive     bool   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	TotalBet     int64  `protobuf:"varint,6,opt,name=total_bet,json=totalBet,proto3" json:"total_bet,omitempty"`
	Contribution int64  `protobuf:"varint,7,opt,name=contribution,proto3" json:"contribution,omitempty"`
}

func (x *AppInfo) Reset() {
	*x = AppInfo{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AppInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AppInfo) ProtoMessage() {}

func (x *AppInfo) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AppInfo.ProtoReflect.Descriptor instead.
func (*AppInfo) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{8}
}

func (x *AppInfo) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

func (x *AppInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AppInfo) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *AppInfo) GetAddedAtUs() int64 {
	if x != nil {
		return x.AddedAtUs
	}
	return 0
}

func (x *AppInfo) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *AppInfo) GetTotalBet() int64 {
	if x != nil {
		return x.TotalBet
	}
	return 0
}

func (x *AppInfo) GetContribution() int64 {
	if x != nil {
		return x.Contribution
	}
	return 0
}

type GetAppInfoResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	App *AppInfo `protobuf:"bytes,1,opt,name=app,proto3" json:"app,omitempty"`
}

func (x *GetAppInfoResponse) Reset() {
	*x = GetAppInfoResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAppInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAppInfoResponse) ProtoMessage() {}

func (x *GetAppInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAppInfoResponse.ProtoReflect.Descriptor instead.
func (*GetAppInfoResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{9}
}

func (x *GetAppInfoResponse) GetApp() *AppInfo {
	if x != nil {
		return x.App
	}
	return nil
}

type ListAppsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ListAppsRequest) Reset() {
	*x = ListAppsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListAppsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAppsRequest) ProtoMessage() {}

func (x *ListAppsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAppsRequest.ProtoReflect.Descriptor instead.
func (*ListAppsRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{10}
}

type ListAppsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Apps []*AppInfo `protobuf:"bytes,1,rep,name=apps,proto3" json:"apps,omitempty"`
}

func (x *ListAppsResponse) Reset() {
	*x = ListAppsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListAppsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAppsResponse) ProtoMessage() {}

func (x *ListAppsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAppsResponse.ProtoReflect.Descriptor instead.
func (*ListAppsResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{11}
}

func (x *ListAppsResponse) GetApps() []*AppInfo {
	if x != nil {
		return x.Apps
	}
	return nil
}

type ListTopAppsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Zero selects the reward table size.
	Limit int32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *ListTopAppsRequest) Reset() {
	*x = ListTopAppsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListTopAppsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTopAppsRequest) ProtoMessage() {}

func (x *ListTopAppsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTopAppsRequest.ProtoReflect.Descriptor instead.
func (*ListTopAppsRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{12}
}

func (x *ListTopAppsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type RankedApp struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Rank       int32  `protobuf:"varint,1,opt,name=rank,proto3" json:"rank,omitempty"`
	AppId      string `protobuf:"bytes,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	TotalBet   int64  `protobuf:"varint,3,opt,name=total_bet,json=totalBet,proto3" json:"total_bet,omitempty"`
	Name       string `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Registered bool   `protobuf:"varint,5,opt,name=registered,proto3" json:"registered,omitempty"`
	Supporters int64  `protobuf:"varint,6,opt,name=supporters,proto3" json:"supporters,omitempty"`
}

func (x *RankedApp) Reset() {
	*x = RankedApp{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RankedApp) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankedApp) ProtoMessage() {}

func (x *RankedApp) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankedApp.ProtoReflect.Descriptor instead.
func (*RankedApp) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{13}
}

func (x *RankedApp) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *RankedApp) GetAppId() string {
	if x != nil {
		return x.AppId
	}
	return ""
}

func (x *RankedApp) GetTotalBet() int64 {
	if x != nil {
		return x.TotalBet
	}
	return 0
}

func (x *RankedApp) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RankedApp) GetRegistered() bool {
	if x != nil {
		return x.Registered
	}
	return false
}

func (x *RankedApp) GetSupporters() int64 {
	if x != nil {
		return x.Supporters
	}
	return 0
}

type ListTopAppsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Apps []*RankedApp `protobuf:"bytes,1,rep,name=apps,proto3" json:"apps,omitempty"`
}

func (x *ListTopAppsResponse) Reset() {
	*x = ListTopAppsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListTopAppsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTopAppsResponse) ProtoMessage() {}

func (x *ListTopAppsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTopAppsResponse.ProtoReflect.Descriptor instead.
func (*ListTopAppsResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{14}
}

func (x *ListTopAppsResponse) GetApps() []*RankedApp {
	if x != nil {
		return x.Apps
	}
	return nil
}

type GetAppRankingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetAppRankingRequest) Reset() {
	*x = GetAppRankingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAppRankingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAppRankingRequest) ProtoMessage() {}

func (x *GetAppRankingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAppRankingRequest.ProtoReflect.Descriptor instead.
func (*GetAppRankingRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{15}
}

type GetAppRankingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Apps []*RankedApp `protobuf:"bytes,1,rep,name=apps,proto3" json:"apps,omitempty"`
}

func (x *GetAppRankingResponse) Reset() {
	*x = GetAppRankingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAppRankingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAppRankingResponse) ProtoMessage() {}

func (x *GetAppRankingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAppRankingResponse.ProtoReflect.Descriptor instead.
func (*GetAppRankingResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{16}
}

func (x *GetAppRankingResponse) GetApps() []*RankedApp {
	if x != nil {
		return x.Apps
	}
	return nil
}

type GetLeaderboardRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// One of "daily", "weekly", "monthly".
	Window string `protobuf:"bytes,1,opt,name=window,proto3" json:"window,omitempty"`
	Limit  int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *GetLeaderboardRequest) Reset() {
	*x = GetLeaderboardRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetLeaderboardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLeaderboardRequest) ProtoMessage() {}

func (x *GetLeaderboardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLeaderboardRequest.ProtoReflect.Descriptor instead.
func (*GetLeaderboardRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{17}
}

func (x *GetLeaderboardRequest) GetWindow() string {
	if x != nil {
		return x.Window
	}
	return ""
}

func (x *GetLeaderboardRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type LeaderboardEntry struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Rank     int32  `protobuf:"varint,1,opt,name=rank,proto3" json:"rank,omitempty"`
	Owner    string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Earnings int64  `protobuf:"varint,3,opt,name=earnings,proto3" json:"earnings,omitempty"`
}

func (x *LeaderboardEntry) Reset() {
	*x = LeaderboardEntry{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[18]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *LeaderboardEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaderboardEntry) ProtoMessage() {}

func (x *LeaderboardEntry) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[18]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaderboardEntry.ProtoReflect.Descriptor instead.
func (*LeaderboardEntry) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{18}
}

func (x *LeaderboardEntry) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *LeaderboardEntry) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *LeaderboardEntry) GetEarnings() int64 {
	if x != nil {
		return x.Earnings
	}
	return 0
}

type GetLeaderboardResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Window  string              `protobuf:"bytes,1,opt,name=window,proto3" json:"window,omitempty"`
	Entries []*LeaderboardEntry `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (x *GetLeaderboardResponse) Reset() {
	*x = GetLeaderboardResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[19]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetLeaderboardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLeaderboardResponse) ProtoMessage() {}

func (x *GetLeaderboardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[19]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLeaderboardResponse.ProtoReflect.Descriptor instead.
func (*GetLeaderboardResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{19}
}

func (x *GetLeaderboardResponse) GetWindow() string {
	if x != nil {
		return x.Window
	}
	return ""
}

func (x *GetLeaderboardResponse) GetEntries() []*LeaderboardEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type GetPoolStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetPoolStatusRequest) Reset() {
	*x = GetPoolStatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[20]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetPoolStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPoolStatusRequest) ProtoMessage() {}

func (x *GetPoolStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[20]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPoolStatusRequest.ProtoReflect.Descriptor instead.
func (*GetPoolStatusRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{20}
}

type GetPoolStatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PoolAmount   int64  `protobuf:"varint,1,opt,name=pool_amount,json=poolAmount,proto3" json:"pool_amount,omitempty"`
	ActiveUsers  int64  `protobuf:"varint,2,opt,name=active_users,json=activeUsers,proto3" json:"active_users,omitempty"`
	Owner        string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	LastSettleUs int64  `protobuf:"varint,4,opt,name=last_settle_us,json=lastSettleUs,proto3" json:"last_settle_us,omitempty"`
}

func (x *GetPoolStatusResponse) Reset() {
	*x = GetPoolStatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[21]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetPoolStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPoolStatusResponse) ProtoMessage() {}

func (x *GetPoolStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[21]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPoolStatusResponse.ProtoReflect.Descriptor instead.
func (*GetPoolStatusResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{21}
}

func (x *GetPoolStatusResponse) GetPoolAmount() int64 {
	if x != nil {
		return x.PoolAmount
	}
	return 0
}

func (x *GetPoolStatusResponse) GetActiveUsers() int64 {
	if x != nil {
		return x.ActiveUsers
	}
	return 0
}

func (x *GetPoolStatusResponse) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *GetPoolStatusResponse) GetLastSettleUs() int64 {
	if x != nil {
		return x.LastSettleUs
	}
	return 0
}

type IsWhitelistedRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *IsWhitelistedRequest) Reset() {
	*x = IsWhitelistedRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[22]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *IsWhitelistedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsWhitelistedRequest) ProtoMessage() {}

func (x *IsWhitelistedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[22]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsWhitelistedRequest.ProtoReflect.Descriptor instead.
func (*IsWhitelistedRequest) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{22}
}

func (x *IsWhitelistedRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type IsWhitelistedResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Whitelisted bool `protobuf:"varint,1,opt,name=whitelisted,proto3" json:"whitelisted,omitempty"`
}

func (x *IsWhitelistedResponse) Reset() {
	*x = IsWhitelistedResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_poolledger_query_v1_query_proto_msgTypes[23]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *IsWhitelistedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsWhitelistedResponse) ProtoMessage() {}

func (x *IsWhitelistedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_poolledger_query_v1_query_proto_msgTypes[23]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsWhitelistedResponse.ProtoReflect.Descriptor instead.
func (*IsWhitelistedResponse) Descriptor() ([]byte, []int) {
	return file_poolledger_query_v1_query_proto_rawDescGZIP(), []int{23}
}

func (x *IsWhitelistedResponse) GetWhitelisted() bool {
	if x != nil {
		return x.Whitelisted
	}
	return false
}

var File_poolledger_query_v1_query_proto protoreflect.FileDescriptor

var file_poolledger_query_v1_query_proto_rawDesc = []byte{
	0x0a, 0x1f, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x71, 0x75, 0x65,
	0x72, 0x79, 0x2f, 0x76, 0x31, 0x2f, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x13, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75,
	0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61,
	0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x22, 0x29, 0x0a, 0x11, 0x47, 0x65, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e,
	0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e,
	0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x22,
	0x6a, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x12, 0x18, 0x0a, 0x07, 0x62,
	0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x62, 0x61,
	0x6c, 0x61, 0x6e, 0x63, 0x65, 0x12, 0x24, 0x0a, 0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61,
	0x73, 0x4f, 0x66, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x2b, 0x0a, 0x13, 0x4c,
	0x69, 0x73, 0x74, 0x55, 0x73, 0x65, 0x72, 0x42, 0x65, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x22, 0x5e, 0x0a, 0x09, 0x42, 0x65, 0x74, 0x52,
	0x65, 0x63, 0x6f, 0x72, 0x64, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06,
	0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x12, 0x22, 0x0a, 0x0d, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64, 0x5f,
	0x61, 0x74, 0x5f, 0x75, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x75, 0x70, 0x64,
	0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x55, 0x73, 0x22, 0x86, 0x01, 0x0a, 0x14, 0x4c, 0x69, 0x73,
	0x74, 0x55, 0x73, 0x65, 0x72, 0x42, 0x65, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x12, 0x32, 0x0a, 0x04, 0x62, 0x65, 0x74, 0x73, 0x18,
	0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1e, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67,
	0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x65, 0x74, 0x52,
	0x65, 0x63, 0x6f, 0x72, 0x64, 0x52, 0x04, 0x62, 0x65, 0x74, 0x73, 0x12, 0x24, 0x0a, 0x0e, 0x61,
	0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f, 0x66, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x22, 0x2a, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x45, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x22, 0x99, 0x01,
	0x0a, 0x13, 0x47, 0x65, 0x74, 0x45, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x12, 0x14, 0x0a, 0x05, 0x64,
	0x61, 0x69, 0x6c, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x64, 0x61, 0x69, 0x6c,
	0x79, 0x12, 0x16, 0x0a, 0x06, 0x77, 0x65, 0x65, 0x6b, 0x6c, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x06, 0x77, 0x65, 0x65, 0x6b, 0x6c, 0x79, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x6f, 0x6e,
	0x74, 0x68, 0x6c, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x6d, 0x6f, 0x6e, 0x74,
	0x68, 0x6c, 0x79, 0x12, 0x24, 0x0a, 0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71,
	0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f,
	0x66, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x2a, 0x0a, 0x11, 0x47, 0x65, 0x74,
	0x41, 0x70, 0x70, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x15,
	0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05,
	0x61, 0x70, 0x70, 0x49, 0x64, 0x22, 0xd4, 0x01, 0x0a, 0x07, 0x41, 0x70, 0x70, 0x49, 0x6e, 0x66,
	0x6f, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x20, 0x0a, 0x0b,
	0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1e,
	0x0a, 0x0b, 0x61, 0x64, 0x64, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x5f, 0x75, 0x73, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x09, 0x61, 0x64, 0x64, 0x65, 0x64, 0x41, 0x74, 0x55, 0x73, 0x12, 0x1b,
	0x0a, 0x09, 0x69, 0x73, 0x5f, 0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x08, 0x69, 0x73, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x74,
	0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x62, 0x65, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08,
	0x74, 0x6f, 0x74, 0x61, 0x6c, 0x42, 0x65, 0x74, 0x12, 0x22, 0x0a, 0x0c, 0x63, 0x6f, 0x6e, 0x74,
	0x72, 0x69, 0x62, 0x75, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x07, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c,
	0x63, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x44, 0x0a, 0x12,
	0x47, 0x65, 0x74, 0x41, 0x70, 0x70, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x2e, 0x0a, 0x03, 0x61, 0x70, 0x70, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1c, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65,
	0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x70, 0x70, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x03, 0x61,
	0x70, 0x70, 0x22, 0x11, 0x0a, 0x0f, 0x4c, 0x69, 0x73, 0x74, 0x41, 0x70, 0x70, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x44, 0x0a, 0x10, 0x4c, 0x69, 0x73, 0x74, 0x41, 0x70, 0x70,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x30, 0x0a, 0x04, 0x61, 0x70, 0x70,
	0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65,
	0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x70,
	0x70, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x04, 0x61, 0x70, 0x70, 0x73, 0x22, 0x2a, 0x0a, 0x12, 0x4c,
	0x69, 0x73, 0x74, 0x54, 0x6f, 0x70, 0x41, 0x70, 0x70, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x22, 0xa7, 0x01, 0x0a, 0x09, 0x52, 0x61, 0x6e, 0x6b,
	0x65, 0x64, 0x41, 0x70, 0x70, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x12, 0x15, 0x0a, 0x06, 0x61, 0x70, 0x70,
	0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x70, 0x70, 0x49, 0x64,
	0x12, 0x1b, 0x0a, 0x09, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x62, 0x65, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x08, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x42, 0x65, 0x74, 0x12, 0x12, 0x0a,
	0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d,
	0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x72, 0x65, 0x67, 0x69, 0x73, 0x74, 0x65, 0x72, 0x65, 0x64, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0a, 0x72, 0x65, 0x67, 0x69, 0x73, 0x74, 0x65, 0x72, 0x65,
	0x64, 0x12, 0x1e, 0x0a, 0x0a, 0x73, 0x75, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x65, 0x72, 0x73, 0x18,
	0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x73, 0x75, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x65, 0x72,
	0x73, 0x22, 0x49, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x54, 0x6f, 0x70, 0x41, 0x70, 0x70, 0x73,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x32, 0x0a, 0x04, 0x61, 0x70, 0x70, 0x73,
	0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1e, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64,
	0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e,
	0x6b, 0x65, 0x64, 0x41, 0x70, 0x70, 0x52, 0x04, 0x61, 0x70, 0x70, 0x73, 0x22, 0x16, 0x0a, 0x14,
	0x47, 0x65, 0x74, 0x41, 0x70, 0x70, 0x52, 0x61, 0x6e, 0x6b, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x22, 0x4b, 0x0a, 0x15, 0x47, 0x65, 0x74, 0x41, 0x70, 0x70, 0x52, 0x61,
	0x6e, 0x6b, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x32, 0x0a,
	0x04, 0x61, 0x70, 0x70, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1e, 0x2e, 0x70, 0x6f,
	0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x52, 0x61, 0x6e, 0x6b, 0x65, 0x64, 0x41, 0x70, 0x70, 0x52, 0x04, 0x61, 0x70, 0x70,
	0x73, 0x22, 0x45, 0x0a, 0x15, 0x47, 0x65, 0x74, 0x4c, 0x65, 0x61, 0x64, 0x65, 0x72, 0x62, 0x6f,
	0x61, 0x72, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x77, 0x69,
	0x6e, 0x64, 0x6f, 0x77, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x77, 0x69, 0x6e, 0x64,
	0x6f, 0x77, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x22, 0x58, 0x0a, 0x10, 0x4c, 0x65, 0x61, 0x64,
	0x65, 0x72, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x12, 0x0a, 0x04,
	0x72, 0x61, 0x6e, 0x6b, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b,
	0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x12, 0x1a, 0x0a, 0x08, 0x65, 0x61, 0x72, 0x6e, 0x69, 0x6e,
	0x67, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x65, 0x61, 0x72, 0x6e, 0x69, 0x6e,
	0x67, 0x73, 0x22, 0x71, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x4c, 0x65, 0x61, 0x64, 0x65, 0x72, 0x62,
	0x6f, 0x61, 0x72, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06,
	0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x77, 0x69,
	0x6e, 0x64, 0x6f, 0x77, 0x12, 0x3f, 0x0a, 0x07, 0x65, 0x6e, 0x74, 0x72, 0x69, 0x65, 0x73, 0x18,
	0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x25, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67,
	0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x65, 0x61, 0x64,
	0x65, 0x72, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x07, 0x65, 0x6e,
	0x74, 0x72, 0x69, 0x65, 0x73, 0x22, 0x16, 0x0a, 0x14, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c,
	0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x97, 0x01,
	0x0a, 0x15, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x6f, 0x6c, 0x5f,
	0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x70, 0x6f,
	0x6f, 0x6c, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x61, 0x63, 0x74, 0x69,
	0x76, 0x65, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b,
	0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x55, 0x73, 0x65, 0x72, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x6f,
	0x77, 0x6e, 0x65, 0x72, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65,
	0x72, 0x12, 0x24, 0x0a, 0x0e, 0x6c, 0x61, 0x73, 0x74, 0x5f, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65,
	0x5f, 0x75, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x6c, 0x61, 0x73, 0x74, 0x53,
	0x65, 0x74, 0x74, 0x6c, 0x65, 0x55, 0x73, 0x22, 0x30, 0x0a, 0x14, 0x49, 0x73, 0x57, 0x68, 0x69,
	0x74, 0x65, 0x6c, 0x69, 0x73, 0x74, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x18, 0x0a, 0x07, 0x61, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x61, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x22, 0x39, 0x0a, 0x15, 0x49, 0x73, 0x57,
	0x68, 0x69, 0x74, 0x65, 0x6c, 0x69, 0x73, 0x74, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x20, 0x0a, 0x0b, 0x77, 0x68, 0x69, 0x74, 0x65, 0x6c, 0x69, 0x73, 0x74, 0x65,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x77, 0x68, 0x69, 0x74, 0x65, 0x6c, 0x69,
	0x73, 0x74, 0x65, 0x64, 0x32, 0xa1, 0x0a, 0x0a, 0x0c, 0x51, 0x75, 0x65, 0x72, 0x79, 0x53, 0x65,
	0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x80, 0x01, 0x0a, 0x0a, 0x47, 0x65, 0x74, 0x42, 0x61, 0x6c,
	0x61, 0x6e, 0x63, 0x65, 0x12, 0x26, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x42, 0x61,
	0x6c, 0x61, 0x6e, 0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x70,
	0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x21, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1b, 0x12, 0x19, 0x2f,
	0x76, 0x31, 0x2f, 0x75, 0x73, 0x65, 0x72, 0x73, 0x2f, 0x7b, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x7d,
	0x2f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x12, 0x83, 0x01, 0x0a, 0x0c, 0x4c, 0x69, 0x73,
	0x74, 0x55, 0x73, 0x65, 0x72, 0x42, 0x65, 0x74, 0x73, 0x12, 0x28, 0x2e, 0x70, 0x6f, 0x6f, 0x6c,
	0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e,
	0x4c, 0x69, 0x73, 0x74, 0x55, 0x73, 0x65, 0x72, 0x42, 0x65, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x73,
	0x65, 0x72, 0x42, 0x65, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1e,
	0x82, 0xd3, 0xe4, 0x93, 0x02, 0x18, 0x12, 0x16, 0x2f, 0x76, 0x31, 0x2f, 0x75, 0x73, 0x65, 0x72,
	0x73, 0x2f, 0x7b, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x7d, 0x2f, 0x62, 0x65, 0x74, 0x73, 0x12, 0x84,
	0x01, 0x0a, 0x0b, 0x47, 0x65, 0x74, 0x45, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x73, 0x12, 0x27,
	0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x45, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65,
	0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65,
	0x74, 0x45, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x22, 0x22, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1c, 0x12, 0x1a, 0x2f, 0x76, 0x31, 0x2f, 0x75,
	0x73, 0x65, 0x72, 0x73, 0x2f, 0x7b, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x7d, 0x2f, 0x65, 0x61, 0x72,
	0x6e, 0x69, 0x6e, 0x67, 0x73, 0x12, 0x80, 0x01, 0x0a, 0x0a, 0x47, 0x65, 0x74, 0x41, 0x70, 0x70,
	0x49, 0x6e, 0x66, 0x6f, 0x12, 0x26, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x70,
	0x70, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x70,
	0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x70, 0x70, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x21, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1b, 0x12, 0x19, 0x2f,
	0x76, 0x31, 0x2f, 0x61, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f,
	0x7b, 0x61, 0x70, 0x70, 0x5f, 0x69, 0x64, 0x7d, 0x12, 0x71, 0x0a, 0x08, 0x4c, 0x69, 0x73, 0x74,
	0x41, 0x70, 0x70, 0x73, 0x12, 0x24, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x41,
	0x70, 0x70, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x70, 0x6f, 0x6f,
	0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x4c, 0x69, 0x73, 0x74, 0x41, 0x70, 0x70, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x22, 0x18, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x12, 0x12, 0x10, 0x2f, 0x76, 0x31, 0x2f, 0x61,
	0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x7a, 0x0a, 0x0b, 0x4c,
	0x69, 0x73, 0x74, 0x54, 0x6f, 0x70, 0x41, 0x70, 0x70, 0x73, 0x12, 0x27, 0x2e, 0x70, 0x6f, 0x6f,
	0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x4c, 0x69, 0x73, 0x74, 0x54, 0x6f, 0x70, 0x41, 0x70, 0x70, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x54, 0x6f,
	0x70, 0x41, 0x70, 0x70, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x18, 0x82,
	0xd3, 0xe4, 0x93, 0x02, 0x12, 0x12, 0x10, 0x2f, 0x76, 0x31, 0x2f, 0x72, 0x61, 0x6e, 0x6b, 0x69,
	0x6e, 0x67, 0x73, 0x2f, 0x74, 0x6f, 0x70, 0x12, 0x7c, 0x0a, 0x0d, 0x47, 0x65, 0x74, 0x41, 0x70,
	0x70, 0x52, 0x61, 0x6e, 0x6b, 0x69, 0x6e, 0x67, 0x12, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x41, 0x70, 0x70, 0x52, 0x61, 0x6e, 0x6b, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x70, 0x70,
	0x52, 0x61, 0x6e, 0x6b, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x14, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x0e, 0x12, 0x0c, 0x2f, 0x76, 0x31, 0x2f, 0x72, 0x61, 0x6e,
	0x6b, 0x69, 0x6e, 0x67, 0x73, 0x12, 0x8c, 0x01, 0x0a, 0x0e, 0x47, 0x65, 0x74, 0x4c, 0x65, 0x61,
	0x64, 0x65, 0x72, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x12, 0x2a, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x4c, 0x65, 0x61, 0x64, 0x65, 0x72, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x4c, 0x65,
	0x61, 0x64, 0x65, 0x72, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x22, 0x21, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1b, 0x12, 0x19, 0x2f, 0x76, 0x31, 0x2f, 0x6c,
	0x65, 0x61, 0x64, 0x65, 0x72, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x73, 0x2f, 0x7b, 0x77, 0x69, 0x6e,
	0x64, 0x6f, 0x77, 0x7d, 0x12, 0x78, 0x0a, 0x0d, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x53,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67,
	0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x50,
	0x6f, 0x6f, 0x6c, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x2a, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75,
	0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x53, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x10, 0x82, 0xd3,
	0xe4, 0x93, 0x02, 0x0a, 0x12, 0x08, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x6f, 0x6f, 0x6c, 0x12, 0x87,
	0x01, 0x0a, 0x0d, 0x49, 0x73, 0x57, 0x68, 0x69, 0x74, 0x65, 0x6c, 0x69, 0x73, 0x74, 0x65, 0x64,
	0x12, 0x29, 0x2e, 0x70, 0x6f, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75,
	0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x73, 0x57, 0x68, 0x69, 0x74, 0x65, 0x6c, 0x69,
	0x73, 0x74, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x70, 0x6f,
	0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x49, 0x73, 0x57, 0x68, 0x69, 0x74, 0x65, 0x6c, 0x69, 0x73, 0x74, 0x65, 0x64, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1f, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x19, 0x12,
	0x17, 0x2f, 0x76, 0x31, 0x2f, 0x77, 0x68, 0x69, 0x74, 0x65, 0x6c, 0x69, 0x73, 0x74, 0x2f, 0x7b,
	0x61, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x7d, 0x42, 0x2f, 0x5a, 0x2d, 0x50, 0x6f, 0x6f, 0x6c,
	0x4c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x70, 0x6f,
	0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2f, 0x76,
	0x31, 0x3b, 0x71, 0x75, 0x65, 0x72, 0x79, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
}

var (
	file_poolledger_query_v1_query_proto_rawDescOnce sync.Once
	file_poolledger_query_v1_query_proto_rawDescData = file_poolledger_query_v1_query_proto_rawDesc
)

func file_poolledger_query_v1_query_proto_rawDescGZIP() []byte {
	file_poolledger_query_v1_query_proto_rawDescOnce.Do(func() {
		file_poolledger_query_v1_query_proto_rawDescData = protoimpl.X.CompressGZIP(file_poolledger_query_v1_query_proto_rawDescData)
	})
	return file_poolledger_query_v1_query_proto_rawDescData
}

var file_poolledger_query_v1_query_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_poolledger_query_v1_query_proto_goTypes = []any{
	(*GetBalanceRequest)(nil),      // 0: poolledger.query.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),     // 1: poolledger.query.v1.GetBalanceResponse
	(*ListUserBetsRequest)(nil),    // 2: poolledger.query.v1.ListUserBetsRequest
	(*BetRecord)(nil),              // 3: poolledger.query.v1.BetRecord
	(*ListUserBetsResponse)(nil),   // 4: poolledger.query.v1.ListUserBetsResponse
	(*GetEarningsRequest)(nil),     // 5: poolledger.query.v1.GetEarningsRequest
	(*GetEarningsResponse)(nil),    // 6: poolledger.query.v1.GetEarningsResponse
	(*GetAppInfoRequest)(nil),      // 7: poolledger.query.v1.GetAppInfoRequest
	(*AppInfo)(nil),                // 8: poolledger.query.v1.AppInfo
	(*GetAppInfoResponse)(nil),     // 9: poolledger.query.v1.GetAppInfoResponse
	(*ListAppsRequest)(nil),        // 10: poolledger.query.v1.ListAppsRequest
	(*ListAppsResponse)(nil),       // 11: poolledger.query.v1.ListAppsResponse
	(*ListTopAppsRequest)(nil),     // 12: poolledger.query.v1.ListTopAppsRequest
	(*RankedApp)(nil),              // 13: poolledger.query.v1.RankedApp
	(*ListTopAppsResponse)(nil),    // 14: poolledger.query.v1.ListTopAppsResponse
	(*GetAppRankingRequest)(nil),   // 15: poolledger.query.v1.GetAppRankingRequest
	(*GetAppRankingResponse)(nil),  // 16: poolledger.query.v1.GetAppRankingResponse
	(*GetLeaderboardRequest)(nil),  // 17: poolledger.query.v1.GetLeaderboardRequest
	(*LeaderboardEntry)(nil),       // 18: poolledger.query.v1.LeaderboardEntry
	(*GetLeaderboardResponse)(nil), // 19: poolledger.query.v1.GetLeaderboardResponse
	(*GetPoolStatusRequest)(nil),   // 20: poolledger.query.v1.GetPoolStatusRequest
	(*GetPoolStatusResponse)(nil),  // 21: poolledger.query.v1.GetPoolStatusResponse
	(*IsWhitelistedRequest)(nil),   // 22: poolledger.query.v1.IsWhitelistedRequest
	(*IsWhitelistedResponse)(nil),  // 23: poolledger.query.v1.IsWhitelistedResponse
}
var file_poolledger_query_v1_query_proto_depIdxs = []int32{
	3,  // 0: poolledger.query.v1.ListUserBetsResponse.bets:type_name -> poolledger.query.v1.BetRecord
	8,  // 1: poolledger.query.v1.GetAppInfoResponse.app:type_name -> poolledger.query.v1.AppInfo
	8,  // 2: poolledger.query.v1.ListAppsResponse.apps:type_name -> poolledger.query.v1.AppInfo
	13, // 3: poolledger.query.v1.ListTopAppsResponse.apps:type_name -> poolledger.query.v1.RankedApp
	13, // 4: poolledger.query.v1.GetAppRankingResponse.apps:type_name -> poolledger.query.v1.RankedApp
	18, // 5: poolledger.query.v1.GetLeaderboardResponse.entries:type_name -> poolledger.query.v1.LeaderboardEntry
	0,  // 6: poolledger.query.v1.QueryService.GetBalance:input_type -> poolledger.query.v1.GetBalanceRequest
	2,  // 7: poolledger.query.v1.QueryService.ListUserBets:input_type -> poolledger.query.v1.ListUserBetsRequest
	5,  // 8: poolledger.query.v1.QueryService.GetEarnings:input_type -> poolledger.query.v1.GetEarningsRequest
	7,  // 9: poolledger.query.v1.QueryService.GetAppInfo:input_type -> poolledger.query.v1.GetAppInfoRequest
	10, // 10: poolledger.query.v1.QueryService.ListApps:input_type -> poolledger.query.v1.ListAppsRequest
	12, // 11: poolledger.query.v1.QueryService.ListTopApps:input_type -> poolledger.query.v1.ListTopAppsRequest
	15, // 12: poolledger.query.v1.QueryService.GetAppRanking:input_type -> poolledger.query.v1.GetAppRankingRequest
	17, // 13: poolledger.query.v1.QueryService.GetLeaderboard:input_type -> poolledger.query.v1.GetLeaderboardRequest
	20, // 14: poolledger.query.v1.QueryService.GetPoolStatus:input_type -> poolledger.query.v1.GetPoolStatusRequest
	22, // 15: poolledger.query.v1.QueryService.IsWhitelisted:input_type -> poolledger.query.v1.IsWhitelistedRequest
	1,  // 16: poolledger.query.v1.QueryService.GetBalance:output_type -> poolledger.query.v1.GetBalanceResponse
	4,  // 17: poolledger.query.v1.QueryService.ListUserBets:output_type -> poolledger.query.v1.ListUserBetsResponse
	6,  // 18: poolledger.query.v1.QueryService.GetEarnings:output_type -> poolledger.query.v1.GetEarningsResponse
	9,  // 19: poolledger.query.v1.QueryService.GetAppInfo:output_type -> poolledger.query.v1.GetAppInfoResponse
	11, // 20: poolledger.query.v1.QueryService.ListApps:output_type -> poolledger.query.v1.ListAppsResponse
	14, // 21: poolledger.query.v1.QueryService.ListTopApps:output_type -> poolledger.query.v1.ListTopAppsResponse
	16, // 22: poolledger.query.v1.QueryService.GetAppRanking:output_type -> poolledger.query.v1.GetAppRankingResponse
	19, // 23: poolledger.query.v1.QueryService.GetLeaderboard:output_type -> poolledger.query.v1.GetLeaderboardResponse
	21, // 24: poolledger.query.v1.QueryService.GetPoolStatus:output_type -> poolledger.query.v1.GetPoolStatusResponse
	23, // 25: poolledger.query.v1.QueryService.IsWhitelisted:output_type -> poolledger.query.v1.IsWhitelistedResponse
	16, // [16:26] is the sub-list for method output_type
	6,  // [6:16] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_poolledger_query_v1_query_proto_init() }
func file_poolledger_query_v1_query_proto_init() {
	if File_poolledger_query_v1_query_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_poolledger_query_v1_query_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*GetBalanceRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*GetBalanceResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*ListUserBetsRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*BetRecord); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*ListUserBetsResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*GetEarningsRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*GetEarningsResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*GetAppInfoRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*AppInfo); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*GetAppInfoResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*ListAppsRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*ListAppsResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*ListTopAppsRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*RankedApp); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*ListTopAppsResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*GetAppRankingRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*GetAppRankingResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*GetLeaderboardRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[18].Exporter = func(v any, i int) any {
			switch v := v.(*LeaderboardEntry); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[19].Exporter = func(v any, i int) any {
			switch v := v.(*GetLeaderboardResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[20].Exporter = func(v any, i int) any {
			switch v := v.(*GetPoolStatusRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[21].Exporter = func(v any, i int) any {
			switch v := v.(*GetPoolStatusResponse); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[22].Exporter = func(v any, i int) any {
			switch v := v.(*IsWhitelistedRequest); i {
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
		file_poolledger_query_v1_query_proto_msgTypes[23].Exporter = func(v any, i int) any {
			switch v := v.(*IsWhitelistedResponse); i {
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
			RawDescriptor: file_poolledger_query_v1_query_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_poolledger_query_v1_query_proto_goTypes,
		DependencyIndexes: file_poolledger_query_v1_query_proto_depIdxs,
		MessageInfos:      file_poolledger_query_v1_query_proto_msgTypes,
	}.Build()
	File_poolledger_query_v1_query_proto = out.File
	file_poolledger_query_v1_query_proto_rawDesc = nil
	file_poolledger_query_v1_query_proto_goTypes = nil
	file_poolledger_query_v1_query_proto_depIdxs = nil
}
