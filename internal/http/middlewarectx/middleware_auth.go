// Package middlewarectx содержит HTTP middleware для проверки токена сессии,
// прав администратора и ограничения частоты запросов.
//
// Authenticate проверяет токен в заголовке Authorization и кладёт сессию
// в контекст запроса. В случае ошибки проверки возвращает HTTP 401.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionKey ключ сессии в контексте.
	SessionKey Key = "session"
	// TokenKey ключ исходного токена в контексте.
	TokenKey Key = "token"
)

// Service проверяет токен и возвращает сессию.
type Service interface {
	Session(ctx context.Context, token string) (models.Session, error)
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}

func withSession(ctx context.Context, token string, sess models.Session) context.Context {
	ctx = context.WithValue(ctx, SessionKey, sess)
	return context.WithValue(ctx, TokenKey, token)
}

// Authenticate пропускает запрос только с действующей сессией.
func Authenticate(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Authenticate"
			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, ok := bearer(r)
			if !ok {
				log.Warn("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}

			sess, err := auth.Session(r.Context(), token)
			if err != nil {
				log.Warn("invalid or expired session", sl.Err(err))
				code, msg := response.FromError(err)
				if code == http.StatusInternalServerError || code == http.StatusNotFound {
					code, msg = http.StatusUnauthorized, "invalid or expired session"
				}
				render.Status(r, code)
				render.JSON(w, r, response.Error(msg))
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), token, sess)))
		})
	}
}

// OptionalSession добавляет сессию в контекст, если токен действителен,
// и пропускает запрос в любом случае.
func OptionalSession(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := auth.Session(r.Context(), token)
			if err != nil {
				log.Debug("ignoring invalid session", sl.Op("middlewarectx.OptionalSession"), sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), token, sess)))
		})
	}
}

// SessionFrom возвращает сессию из контекста запроса.
func SessionFrom(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(models.Session)
	return sess, ok
}

// TokenFrom возвращает токен, по которому найдена сессия.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// WithSession кладёт сессию в контекст. Используется в тестах обработчиков.
func WithSession(ctx context.Context, token string, sess models.Session) context.Context {
	return withSession(ctx, token, sess)
}
