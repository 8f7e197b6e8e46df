// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: poolledger/ingest/v1/ingest.proto

package ingestv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	IngestService_SubmitStake_FullMethodName       = "/poolledger.ingest.v1.IngestService/SubmitStake"
	IngestService_SubmitRedeem_FullMethodName      = "/poolledger.ingest.v1.IngestService/SubmitRedeem"
	IngestService_SubmitSettle_FullMethodName      = "/poolledger.ingest.v1.IngestService/SubmitSettle"
	IngestService_AddApplication_FullMethodName    = "/poolledger.ingest.v1.IngestService/AddApplication"
	IngestService_RemoveApplication_FullMethodName = "/poolledger.ingest.v1.IngestService/RemoveApplication"
	IngestService_InjectPool_FullMethodName        = "/poolledger.ingest.v1.IngestService/InjectPool"
)

// IngestServiceClient is the client API for IngestService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestService accepts manually submitted operations. High-throughput
// ingestion goes through NATS JetStream; this surface is for admin
// operations, tooling, and tests. Submissions are fire-and-forget into
// the core pipeline: acceptance here means enqueued, not applied.
type IngestServiceClient interface {
	SubmitStake(ctx context.Context, in *SubmitStakeRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitRedeem(ctx context.Context, in *SubmitRedeemRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitSettle(ctx context.Context, in *SubmitSettleRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	AddApplication(ctx context.Context, in *AddApplicationRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	RemoveApplication(ctx context.Context, in *RemoveApplicationRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	InjectPool(ctx context.Context, in *InjectPoolRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
}

type ingestServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestServiceClient(cc grpc.ClientConnInterface) IngestServiceClient {
	return &ingestServiceClient{cc}
}

func (c *ingestServiceClient) SubmitStake(ctx context.Context, in *SubmitStakeRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitStake_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitRedeem(ctx context.Context, in *SubmitRedeemRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitRedeem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitSettle(ctx context.Context, in *SubmitSettleRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitSettle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) AddApplication(ctx context.Context, in *AddApplicationRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_AddApplication_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) RemoveApplication(ctx context.Context, in *RemoveApplicationRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_RemoveApplication_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) InjectPool(ctx context.Context, in *InjectPoolRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_InjectPool_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestServiceServer is the server API for IngestService service.
// All implementations must embed UnimplementedIngestServiceServer
// for forward compatibility
//
// IngestService accepts manually submitted operations. High-throughput
// ingestion goes through NATS JetStream; this surface is for admin
// operations, tooling, and tests. Submissions are fire-and-forget into
// the core pipeline: acceptance here means enqueued, not applied.
type IngestServiceServer interface {
	SubmitStake(context.Context, *SubmitStakeRequest) (*SubmitResponse, error)
	SubmitRedeem(context.Context, *SubmitRedeemRequest) (*SubmitResponse, error)
	SubmitSettle(context.Context, *SubmitSettleRequest) (*SubmitResponse, error)
	AddApplication(context.Context, *AddApplicationRequest) (*SubmitResponse, error)
	RemoveApplication(context.Context, *RemoveApplicationRequest) (*SubmitResponse, error)
	InjectPool(context.Context, *InjectPoolRequest) (*SubmitResponse, error)
	mustEmbedUnimplementedIngestServiceServer()
}

// UnimplementedIngestServiceServer must be embedded to have forward compatible implementations.
type UnimplementedIngestServiceServer struct {
}

func (UnimplementedIngestServiceServer) SubmitStake(context.Context, *SubmitStakeRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitStake not implemented")
}
func (UnimplementedIngestServiceServer) SubmitRedeem(context.Context, *SubmitRedeemRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitRedeem not implemented")
}
func (UnimplementedIngestServiceServer) SubmitSettle(context.Context, *SubmitSettleRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitSettle not implemented")
}
func (UnimplementedIngestServiceServer) AddApplication(context.Context, *AddApplicationRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddApplication not implemented")
}
func (UnimplementedIngestServiceServer) RemoveApplication(context.Context, *RemoveApplicationRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveApplication not implemented")
}
func (UnimplementedIngestServiceServer) InjectPool(context.Context, *InjectPoolRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InjectPool not implemented")
}
func (UnimplementedIngestServiceServer) mustEmbedUnimplementedIngestServiceServer() {}

// UnsafeIngestServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestServiceServer will
// result in compilation errors.
type UnsafeIngestServiceServer interface {
	mustEmbedUnimplementedIngestServiceServer()
}

func RegisterIngestServiceServer(s grpc.ServiceRegistrar, srv IngestServiceServer) {
	s.RegisterService(&IngestService_ServiceDesc, srv)
}

func _IngestService_SubmitStake_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitStakeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitStake(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitStake_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitStake(ctx, req.(*SubmitStakeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitRedeem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitRedeemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitRedeem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitRedeem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitRedeem(ctx, req.(*SubmitRedeemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitSettle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitSettleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitSettle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitSettle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitSettle(ctx, req.(*SubmitSettleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_AddApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).AddApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_AddApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).AddApplication(ctx, req.(*AddApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_RemoveApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).RemoveApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_RemoveApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).RemoveApplication(ctx, req.(*RemoveApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_InjectPool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InjectPoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).InjectPool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_InjectPool_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).InjectPool(ctx, req.(*InjectPoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestService_ServiceDesc is the grpc.ServiceDesc for IngestService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "poolledger.ingest.v1.IngestService",
	HandlerType: (*IngestServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitStake",
			Handler:    _IngestService_SubmitStake_Handler,
		},
		{
			MethodName: "SubmitRedeem",
			Handler:    _IngestService_SubmitRedeem_Handler,
		},
		{
			MethodName: "SubmitSettle",
			Handler:    _IngestService_SubmitSettle_Handler,
		},
		{
			MethodName: "AddApplication",
			Handler:    _IngestService_AddApplication_Handler,
		},
		{
			MethodName: "RemoveApplication",
			Handler:    _IngestService_RemoveApplication_Handler,
		},
		{
			MethodName: "InjectPool",
			Handler:    _IngestService_InjectPool_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "poolledger/ingest/v1/ingest.proto",
}
