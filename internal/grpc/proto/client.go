package proto

import (
	"context"

	"google.golang.org/grpc"
)

// LaunchServiceClient - клиент сервиса, использующий JSON-кодек
type LaunchServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLaunchServiceClient создаёт клиент поверх соединения
func NewLaunchServiceClient(cc grpc.ClientConnInterface) *LaunchServiceClient {
	return &LaunchServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LaunchServiceClient) GetStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "GetStats", in, opts)
}

func (c *LaunchServiceClient) ListUpcoming(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "ListUpcoming", in, opts)
}

func (c *LaunchServiceClient) GetUpcomingStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "GetUpcomingStats", in, opts)
}

func (c *LaunchServiceClient) GetUpcoming(ctx context.Context, in *GetUpcomingRequest, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "GetUpcoming", in, opts)
}

func (c *LaunchServiceClient) ListLaunches(ctx context.Context, in *ListLaunchesRequest, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "ListLaunches", in, opts)
}

func (c *LaunchServiceClient) GetLaunch(ctx context.Context, in *GetLaunchRequest, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "GetLaunch", in, opts)
}

func (c *LaunchServiceClient) GetDragon(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "GetDragon", in, opts)
}

func (c *LaunchServiceClient) GetDragonSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Reply, error) {
	return invoke[Reply](ctx, c.cc, "GetDragonSummary", in, opts)
}

func (c *LaunchServiceClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingReply, error) {
	return invoke[PingReply](ctx, c.cc, "Ping", in, opts)
}
