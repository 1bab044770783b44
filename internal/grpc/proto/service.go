// Package proto описывает gRPC сервис spacex.v1.LaunchService. Сообщения
// передаются в JSON, поэтому описание сервиса написано вручную, без protoc.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName - полное имя сервиса
const ServiceName = "spacex.v1.LaunchService"

// FullMethod возвращает полное имя метода сервиса
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// LaunchServiceServer представляет интерфейс gRPC сервиса
type LaunchServiceServer interface {
	GetStats(ctx context.Context, req *Empty) (*Reply, error)
	ListUpcoming(ctx context.Context, req *Empty) (*Reply, error)
	GetUpcomingStats(ctx context.Context, req *Empty) (*Reply, error)
	GetUpcoming(ctx context.Context, req *GetUpcomingRequest) (*Reply, error)
	ListLaunches(ctx context.Context, req *ListLaunchesRequest) (*Reply, error)
	GetLaunch(ctx context.Context, req *GetLaunchRequest) (*Reply, error)
	GetDragon(ctx context.Context, req *Empty) (*Reply, error)
	GetDragonSummary(ctx context.Context, req *Empty) (*Reply, error)
	Ping(ctx context.Context, req *Empty) (*PingReply, error)
}

// UnimplementedLaunchServiceServer отвечает Unimplemented на все методы
type UnimplementedLaunchServiceServer struct{}

func (UnimplementedLaunchServiceServer) GetStats(context.Context, *Empty) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

func (UnimplementedLaunchServiceServer) ListUpcoming(context.Context, *Empty) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUpcoming not implemented")
}

func (UnimplementedLaunchServiceServer) GetUpcomingStats(context.Context, *Empty) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUpcomingStats not implemented")
}

func (UnimplementedLaunchServiceServer) GetUpcoming(context.Context, *GetUpcomingRequest) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUpcoming not implemented")
}

func (UnimplementedLaunchServiceServer) ListLaunches(context.Context, *ListLaunchesRequest) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLaunches not implemented")
}

func (UnimplementedLaunchServiceServer) GetLaunch(context.Context, *GetLaunchRequest) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLaunch not implemented")
}

func (UnimplementedLaunchServiceServer) GetDragon(context.Context, *Empty) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDragon not implemented")
}

func (UnimplementedLaunchServiceServer) GetDragonSummary(context.Context, *Empty) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDragonSummary not implemented")
}

func (UnimplementedLaunchServiceServer) Ping(context.Context, *Empty) (*PingReply, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

// unaryHandler строит обработчик метода: декодирует запрос и пропускает
// вызов через интерцепторы сервера
func unaryHandler[Req, Resp any](method string, call func(LaunchServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(LaunchServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		})
	}
}

// LaunchServiceDesc - описание сервиса для grpc.Server
var LaunchServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LaunchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStats", Handler: unaryHandler("GetStats", LaunchServiceServer.GetStats)},
		{MethodName: "ListUpcoming", Handler: unaryHandler("ListUpcoming", LaunchServiceServer.ListUpcoming)},
		{MethodName: "GetUpcomingStats", Handler: unaryHandler("GetUpcomingStats", LaunchServiceServer.GetUpcomingStats)},
		{MethodName: "GetUpcoming", Handler: unaryHandler("GetUpcoming", LaunchServiceServer.GetUpcoming)},
		{MethodName: "ListLaunches", Handler: unaryHandler("ListLaunches", LaunchServiceServer.ListLaunches)},
		{MethodName: "GetLaunch", Handler: unaryHandler("GetLaunch", LaunchServiceServer.GetLaunch)},
		{MethodName: "GetDragon", Handler: unaryHandler("GetDragon", LaunchServiceServer.GetDragon)},
		{MethodName: "GetDragonSummary", Handler: unaryHandler("GetDragonSummary", LaunchServiceServer.GetDragonSummary)},
		{MethodName: "Ping", Handler: unaryHandler("Ping", LaunchServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "spacex/v1/launch_service.json",
}

// RegisterLaunchServiceServer регистрирует реализацию сервиса в gRPC сервере
func RegisterLaunchServiceServer(s grpc.ServiceRegistrar, srv LaunchServiceServer) {
	s.RegisterService(&LaunchServiceDesc, srv)
}
