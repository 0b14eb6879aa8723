package courseportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/course-portal/internal/cache"
	"github.com/magabrotheeeer/course-portal/internal/config"
	"github.com/magabrotheeeer/course-portal/internal/grpc/client"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/health"
	"github.com/magabrotheeeer/course-portal/internal/lib/jwt"
	"github.com/magabrotheeeer/course-portal/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/migrations"
	"github.com/magabrotheeeer/course-portal/internal/paymentprovider"
	authservice "github.com/magabrotheeeer/course-portal/internal/services/auth"
	"github.com/magabrotheeeer/course-portal/internal/services/notification"
	paymentservice "github.com/magabrotheeeer/course-portal/internal/services/payment"
	"github.com/magabrotheeeer/course-portal/internal/services/progress"
	"github.com/magabrotheeeer/course-portal/internal/services/session"
	subservice "github.com/magabrotheeeer/course-portal/internal/services/subscription"
	"github.com/magabrotheeeer/course-portal/internal/storage/local"
	"github.com/magabrotheeeer/course-portal/internal/storage/repository"
)

// migrateRetryInterval как часто проверять базу, недоступную при запуске.
const migrateRetryInterval = 10 * time.Second

// App HTTP-приложение платформы.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	migrator *migrations.Deferred
	closers  []func() error
}

// New собирает зависимости. Недоступная база не мешает запуску: запросы
// к ней завершаются ошибкой недоступности, и сервисы переходят на
// локальное хранилище.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "courseportal.New"

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, migrator, err := openStorage(cfg, logger)
	if err != nil {
		_ = cacheRedis.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	app := &App{logger: logger, db: db, cache: cacheRedis, migrator: migrator}

	transport, err := app.newTransport(cfg, logger)
	if err != nil {
		logger.Warn("email transport disabled, notifications are stored locally", sl.Err(err))
	}
	services := buildServices(cfg, db, cacheRedis, transport, logger)
	if migrator != nil {
		services.Health["postgres"] = migrator.Ensure
	}

	if cfg.RemoteAuth {
		authClient, err := client.NewAuthClient(cfg.GRPCAuthAddress)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, authClient.Close)
		services.Sessions = authClient
		logger.Info("sessions are validated by auth service", slog.String("address", cfg.GRPCAuthAddress))
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, services)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// buildServices собирает сервисы поверх открытых хранилищ. transport
// может быть nil.
func buildServices(cfg *config.Config, db *repository.Storage, c *cache.Cache, transport notification.Transport, logger *slog.Logger) Services {
	localStore := local.New(c)
	sessions := session.NewStore(c)
	subscriptions := subservice.NewService(db, logger)

	dispatcher := notification.NewDispatcher(transport, localStore, db, notification.Options{
		AdminEmail: cfg.AdminEmail,
		Timeout:    cfg.EmailTimeout,
	}, logger)

	authService := authservice.NewService(authservice.Deps{
		Users:         db,
		Local:         localStore,
		Subscriptions: subscriptions,
		Sessions:      sessions,
		Notifier:      dispatcher,
		Tokens:        jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL),
	}, logger)

	gateway := paymentprovider.NewClient(cfg.Razorpay)
	if !gateway.Configured() {
		logger.Warn("razorpay keys are not set, checkout is disabled")
	}
	paymentService := paymentservice.NewService(paymentservice.Deps{
		Gateway:       gateway,
		Repository:    db,
		Subscriptions: subscriptions,
		Checkouts:     paymentservice.NewRedisStore(c),
		Local:         localStore,
		Sessions:      sessions,
		Notifier:      dispatcher,
	}, paymentservice.Config{
		KeySecret:   cfg.KeySecret,
		Currency:    cfg.Currency,
		CompanyName: cfg.CompanyName,
		ThemeColor:  cfg.ThemeColor,
		CheckoutTTL: cfg.CheckoutTTL,
		LoginURL:    cfg.LoginURL,
	}, logger)

	return Services{
		Auth:          authService,
		Sessions:      authService,
		SessionStore:  sessions,
		Subscriptions: subscriptions,
		Payments:      paymentService,
		Progress:      progress.NewStore(c),
		Dispatcher:    dispatcher,
		Health: map[string]health.Check{
			"postgres": db.DB.PingContext,
			"redis": func(ctx context.Context) error {
				return c.Db.Ping(ctx).Err()
			},
		},
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	}
}

// openStorage подключается к PostgreSQL и применяет миграции. Если база
// недоступна, возвращает хранилище с ленивым пулом соединений и
// migrations.Deferred, который применит миграции после её появления.
func openStorage(cfg *config.Config, logger *slog.Logger) (*repository.Storage, *migrations.Deferred, error) {
	db, err := repository.New(cfg.StorageConnectionString, cfg.RequestTimeout)
	if err != nil {
		logger.Error("database is unavailable, starting in degraded mode", sl.Err(err))
		if db, err = repository.NewLazy(cfg.StorageConnectionString, cfg.RequestTimeout); err != nil {
			return nil, nil, err
		}
		return db, migrations.NewDeferred(db.DB, cfg.MigrationsPath), nil
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, nil, nil
}

// newTransport выбирает транспорт писем. Для provider=queue открывает
// канал RabbitMQ, который закрывается вместе с приложением.
func (a *App) newTransport(cfg *config.Config, logger *slog.Logger) (notification.Transport, error) {
	var pub rabbitmq.Publisher
	if cfg.Provider == "queue" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		a.closers = append(a.closers, ch.Close, conn.Close)
		pub = ch
	}
	return notification.FromConfig(cfg.Email, cfg.SMTP, pub, logger)
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	if a.migrator != nil {
		go a.migrator.Retry(ctx, migrateRetryInterval, a.logger)
	}
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && !errors.Is(err, amqp.ErrClosed) {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close redis", sl.Err(err))
	}
}
