package grpc

import (
	"context"
	"time"

	"github.com/ridwaanhall/SpaceX/internal/envelope"
	"github.com/ridwaanhall/SpaceX/internal/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// requestIDKey - ключ метаданных с идентификатором запроса
const requestIDKey = "x-request-id"

// RequestIDInterceptor назначает вызову идентификатор и возвращает его в заголовке
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		var incoming string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(requestIDKey); len(values) > 0 {
				incoming = values[0]
			}
		}
		id := middleware.NewRequestID(incoming)
		// Ошибка возможна только вне серверного вызова
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, id))
		return handler(middleware.WithRequestID(ctx, id), req)
	}
}

// RecoveryInterceptor перехватывает панику обработчика и отвечает Internal
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("gRPC handler panic recovered",
					zap.String("request_id", middleware.RequestIDFromContext(ctx)),
					zap.String("method", info.FullMethod),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				resp, err = nil, status.Error(codes.Internal, envelope.MsgInternal)
			}
		}()
		return handler(ctx, req)
	}
}

// LoggingInterceptor создаёт интерцептор для логирования gRPC запросов
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		var clientIP string
		if p, ok := peer.FromContext(ctx); ok {
			clientIP = p.Addr.String()
		}

		logger.Info("gRPC request",
			zap.String("request_id", middleware.RequestIDFromContext(ctx)),
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientIP),
			zap.String("status_code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)

		return resp, err
	}
}
