// Package status отдаёт статус подписки текущего пользователя и
// синхронизирует подписку в кеше сессии с основным хранилищем.
package status

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/view"
)

// Subscriptions источник текущей подписки.
type Subscriptions interface {
	Current(ctx context.Context, userID string, now time.Time) (*models.Subscription, error)
}

// Sessions обновление подписки в сессии.
type Sessions interface {
	UpdateSubscription(ctx context.Context, id string, sub *models.Subscription) error
}

// Data подписка и блок статуса.
type Data struct {
	Subscription *models.Subscription `json:"subscription,omitempty"`
	Status       view.Status          `json:"status"`
}

// Handler статус подписки.
type Handler struct {
	log      *slog.Logger
	subs     Subscriptions
	sessions Sessions
	now      func() time.Time
}

// New создает Handler.
func New(log *slog.Logger, subs Subscriptions, sessions Sessions) *Handler {
	return &Handler{log: log, subs: subs, sessions: sessions, now: time.Now}
}

// ServeHTTP godoc
// @Summary Статус подписки
// @Description Перечитывает текущую подписку. Если хранилище недоступно, используется копия из сессии.
// @Tags Subscription
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=Data}
// @Failure 401 {object} response.ErrorResponse
// @Router /subscription/status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	now := h.now()
	sub, err := h.subs.Current(r.Context(), sess.User.ID, now)
	switch {
	case err != nil:
		log.Warn("using cached subscription", sl.Err(err))
	case !sameSubscription(sess.Subscription, sub):
		sess.Subscription = sub
		if err = h.sessions.UpdateSubscription(r.Context(), sess.ID, sub); err != nil {
			log.Warn("failed to refresh session subscription", sl.Err(err))
		}
	}

	render.JSON(w, r, response.OKWithData(Data{
		Subscription: sess.Subscription,
		Status:       view.Display(sess, now),
	}))
}

func sameSubscription(a, b *models.Subscription) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.ExpiryDate.Equal(b.ExpiryDate) && a.Status == b.Status
}
