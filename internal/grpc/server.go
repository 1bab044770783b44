// Package grpc содержит реализацию gRPC сервера поверх того же конвейера,
// что и HTTP API
package grpc

import (
	"context"
	"encoding/json"

	"github.com/ridwaanhall/SpaceX/internal/aggregate"
	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"github.com/ridwaanhall/SpaceX/internal/envelope"
	"github.com/ridwaanhall/SpaceX/internal/grpc/proto"
	"github.com/ridwaanhall/SpaceX/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server реализует gRPC сервер для сервиса запусков
type Server struct {
	proto.UnimplementedLaunchServiceServer
	svc    *service.Service
	logger *zap.Logger
}

// NewServer создаёт новый gRPC сервер
func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		svc:    svc,
		logger: logger,
	}
}

// NewGRPCServer создаёт grpc.Server с интерцепторами и зарегистрированным сервисом
func NewGRPCServer(svc *service.Service, logger *zap.Logger) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RequestIDInterceptor(),
		LoggingInterceptor(logger),
		RecoveryInterceptor(logger),
	))
	proto.RegisterLaunchServiceServer(srv, NewServer(svc, logger))
	return srv
}

// GetStats возвращает статистику провайдера
func (s *Server) GetStats(ctx context.Context, _ *proto.Empty) (*proto.Reply, error) {
	reply, err := s.svc.Stats(ctx)
	return s.reply(envelope.MsgStats, reply, err)
}

// ListUpcoming возвращает предстоящие запуски
func (s *Server) ListUpcoming(ctx context.Context, _ *proto.Empty) (*proto.Reply, error) {
	reply, err := s.svc.Upcoming(ctx)
	return s.reply(envelope.MsgUpcoming, reply, err)
}

// GetUpcomingStats возвращает сводку по предстоящим запускам
func (s *Server) GetUpcomingStats(ctx context.Context, _ *proto.Empty) (*proto.Reply, error) {
	reply, err := s.svc.UpcomingStats(ctx)
	return s.reply(envelope.MsgUpcomingStats, reply, err)
}

// GetUpcoming возвращает предстоящий запуск по id
func (s *Server) GetUpcoming(ctx context.Context, req *proto.GetUpcomingRequest) (*proto.Reply, error) {
	reply, err := s.svc.UpcomingByID(ctx, req.ID)
	return s.reply(envelope.MsgUpcomingItem, reply, err)
}

// ListLaunches возвращает прошедшие запуски
func (s *Server) ListLaunches(ctx context.Context, req *proto.ListLaunchesRequest) (*proto.Reply, error) {
	reply, err := s.svc.Launches(ctx, aggregate.ParseSortOptions(req.Sort, req.Order))
	return s.reply(envelope.MsgLaunches, reply, err)
}

// GetLaunch возвращает детальную информацию о запуске
func (s *Server) GetLaunch(ctx context.Context, req *proto.GetLaunchRequest) (*proto.Reply, error) {
	reply, err := s.svc.Launch(ctx, req.Link)
	return s.reply(envelope.MsgLaunch, reply, err)
}

// GetDragon возвращает кадр телеметрии
func (s *Server) GetDragon(ctx context.Context, _ *proto.Empty) (*proto.Reply, error) {
	reply, err := s.svc.Dragon(ctx)
	return s.reply(envelope.MsgDragon, reply, err)
}

// GetDragonSummary возвращает сводку телеметрии
func (s *Server) GetDragonSummary(ctx context.Context, _ *proto.Empty) (*proto.Reply, error) {
	reply, err := s.svc.DragonSummary(ctx)
	return s.reply(envelope.MsgDragonSummary, reply, err)
}

// Ping проверяет состояние сервиса
func (s *Server) Ping(context.Context, *proto.Empty) (*proto.PingReply, error) {
	return &proto.PingReply{Status: "healthy", Message: "LaunchService is running"}, nil
}

// reply формирует ответ из результата сервиса
func (s *Server) reply(message string, r service.Reply, err error) (*proto.Reply, error) {
	if err != nil {
		return nil, s.mapError(err)
	}
	data, err := json.Marshal(r.Data)
	if err != nil {
		s.logger.Error("Failed to encode reply", zap.Error(err))
		return nil, status.Error(codes.Internal, envelope.MsgInternal)
	}
	return &proto.Reply{
		Success:  true,
		Message:  message,
		Data:     data,
		Warnings: len(r.Warnings),
	}, nil
}

// mapError преобразует ошибки конвейера в gRPC статусы с текстом без подробностей
func (s *Server) mapError(err error) error {
	kind := apperr.KindOf(err)
	m := envelope.MapKind(kind)
	s.logger.Warn("Request failed",
		zap.String("resource", apperr.ResourceOf(err)),
		zap.Stringer("category", kind),
		zap.String("code", m.Code.String()),
	)
	return status.Error(m.Code, m.Message)
}
