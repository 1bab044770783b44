// Command spacex запускает HTTP и gRPC серверы прокси данных о запусках SpaceX.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ridwaanhall/SpaceX/internal/app"
	"github.com/ridwaanhall/SpaceX/internal/config"
	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	grpcserver "github.com/ridwaanhall/SpaceX/internal/grpc"
	"github.com/ridwaanhall/SpaceX/internal/log"
	"github.com/ridwaanhall/SpaceX/internal/service"
	"github.com/ridwaanhall/SpaceX/internal/upstream"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Получаем конфигурацию
	cfg, err := config.NewConfig()
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("Invalid configuration", zap.Error(err))
	}

	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("Failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// newService собирает конвейер: расшифровка адресов, клиент upstream, сервис
func newService(cfg *config.Config, logger *zap.Logger) (*service.Service, error) {
	resolver, err := endpoint.NewResolver(cfg.SecretKey, cfg.Endpoints, logger)
	if err != nil {
		return nil, fmt.Errorf("endpoint resolver: %w", err)
	}
	client := upstream.New(upstream.Options{
		Timeout:   cfg.UpstreamTimeout,
		UserAgent: cfg.UserAgent,
	}, logger)
	return service.NewService(resolver, client, logger), nil
}

// run открывает слушатели и обслуживает запросы до отмены ctx
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	httpLis, err := net.Listen("tcp", cfg.RunAddr)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		_ = httpLis.Close()
		return fmt.Errorf("listen grpc: %w", err)
	}

	logger.Info("Configuration loaded", zap.Stringer("config", cfg))
	return serve(ctx, svc, cfg.IsAvailable, httpLis, grpcLis, logger)
}

// serve запускает оба сервера в одной errgroup и останавливает их вместе
func serve(ctx context.Context, svc *service.Service, available bool, httpLis, grpcLis net.Listener, logger *zap.Logger) error {
	router := app.NewRouter(app.NewApp(svc, logger, available), logger)
	httpSrv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	grpcSrv := grpcserver.NewGRPCServer(svc, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server",
			zap.String("address", httpLis.Addr().String()),
			zap.Bool("available", available),
		)
		if err := httpSrv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Starting gRPC server", zap.String("address", grpcLis.Addr().String()))
		if err := grpcSrv.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcSrv.GracefulStop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
