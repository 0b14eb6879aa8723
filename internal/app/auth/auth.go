// Package auth собирает gRPC-сервис авторизации.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"github.com/magabrotheeeer/course-portal/internal/cache"
	"github.com/magabrotheeeer/course-portal/internal/config"
	"github.com/magabrotheeeer/course-portal/internal/grpc/authpb"
	"github.com/magabrotheeeer/course-portal/internal/grpc/server"
	"github.com/magabrotheeeer/course-portal/internal/lib/jwt"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	authservices "github.com/magabrotheeeer/course-portal/internal/services/auth"
	"github.com/magabrotheeeer/course-portal/internal/services/notification"
	"github.com/magabrotheeeer/course-portal/internal/services/session"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
	"github.com/magabrotheeeer/course-portal/internal/storage/local"
	"github.com/magabrotheeeer/course-portal/internal/storage/repository"
)

// App gRPC-сервис авторизации. Делит с HTTP-сервисом базу и Redis,
// поэтому сессии, открытые в одном сервисе, видны в другом.
type App struct {
	grpcServer *grpc.Server
	listener   net.Listener
	db         *repository.Storage
	cache      *cache.Cache
	logger     *slog.Logger
}

// New создает App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.auth.New"

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := repository.New(cfg.StorageConnectionString, cfg.RequestTimeout)
	if err != nil {
		logger.Error("database is unavailable, starting in degraded mode", sl.Err(err))
		if db, err = repository.NewLazy(cfg.StorageConnectionString, cfg.RequestTimeout); err != nil {
			_ = cacheRedis.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	localStore := local.New(cacheRedis)
	subscriptions := subscription.NewService(db, logger)

	// письма из этого сервиса только журналируются, отправкой занимается HTTP-сервис
	dispatcher := notification.NewDispatcher(nil, localStore, db, notification.Options{
		AdminEmail: cfg.AdminEmail,
	}, logger)

	authService := authservices.NewService(authservices.Deps{
		Users:         db,
		Local:         localStore,
		Subscriptions: subscriptions,
		Sessions:      session.NewStore(cacheRedis),
		Notifier:      dispatcher,
		Tokens:        jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL),
	}, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAuthAddress)
	if err != nil {
		_ = db.Close()
		_ = cacheRedis.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	grpcServer := grpc.NewServer()
	authpb.RegisterAuthServiceServer(grpcServer, server.NewAuthServer(authService, logger))

	return &App{
		grpcServer: grpcServer,
		listener:   lis,
		db:         db,
		cache:      cacheRedis,
		logger:     logger,
	}, nil
}

// Run обслуживает запросы до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("Auth gRPC service listening on", slog.String("address", a.listener.Addr().String()))
		errCh <- a.grpcServer.Serve(a.listener)
	}()

	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", sl.Err(err))
		}
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis", sl.Err(err))
		}
	}()

	select {
	case <-ctx.Done():
		a.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
