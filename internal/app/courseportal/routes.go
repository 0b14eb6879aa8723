// Package courseportal собирает HTTP-приложение платформы курсов.
package courseportal

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/course-portal/internal/http/handlers/admin/notifications"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/health"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/pages"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/payment/checkout"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/payment/dismiss"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/payment/failure"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/payment/success"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/payment/verify"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/progress/complete"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/progress/stats"
	"github.com/magabrotheeeer/course-portal/internal/http/handlers/subscription/status"
	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/course-portal/internal/services/auth"
	"github.com/magabrotheeeer/course-portal/internal/services/notification"
	paymentservice "github.com/magabrotheeeer/course-portal/internal/services/payment"
	"github.com/magabrotheeeer/course-portal/internal/services/progress"
	"github.com/magabrotheeeer/course-portal/internal/services/session"
	subservice "github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// Services зависимости обработчиков.
type Services struct {
	Auth          *authservice.Service
	Sessions      middlewarectx.Service
	SessionStore  *session.Store
	Subscriptions *subservice.Service
	Payments      *paymentservice.Service
	Progress      *progress.Store
	Dispatcher    *notification.Dispatcher
	Health        map[string]health.Check
	RateLimit     float64
	RateBurst     int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(s.RateLimit, s.RateBurst, logger))

		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/health", health.New(logger, s.Health).ServeHTTP)
		r.With(middlewarectx.OptionalSession(s.Sessions, logger)).
			Get("/pages/{page}", pages.New(logger).ServeHTTP)

		// Группа с проверкой сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Authenticate(s.Sessions, logger))

			r.Post("/logout", logout.New(logger, s.Auth).ServeHTTP)
			r.Get("/me", me.New(logger).ServeHTTP)
			r.Get("/subscription/status", status.New(logger, s.Subscriptions, s.SessionStore).ServeHTTP)

			r.Post("/payments/checkout", checkout.New(logger, s.Payments).ServeHTTP)
			r.Post("/payments/{id}/success", success.New(logger, s.Payments).ServeHTTP)
			r.Post("/payments/{id}/failure", failure.New(logger, s.Payments).ServeHTTP)
			r.Post("/payments/{id}/dismiss", dismiss.New(logger, s.Payments).ServeHTTP)
			r.Get("/payments/{id}/verify", verify.New(logger, s.Payments).ServeHTTP)

			r.Post("/progress/videos", complete.New(logger, s.Progress).ServeHTTP)
			r.Get("/progress", stats.New(logger, s.Progress).ServeHTTP)

			// URLFormat отрезает расширение, /admin/notifications.csv приходит сюда
			r.With(middlewarectx.AdminOnly(logger)).
				Get("/admin/notifications", notifications.New(logger, s.Dispatcher).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
