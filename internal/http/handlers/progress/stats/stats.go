// Package stats отдаёт статистику обучения пользователя.
package stats

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
	"github.com/magabrotheeeer/course-portal/internal/services/progress"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// Data статистика и список просмотренных видео.
type Data struct {
	progress.Stats
	Completed []string `json:"completed"`
}

// Service хранилище прогресса.
type Service interface {
	Completed(ctx context.Context, userID string) ([]string, error)
	Stats(ctx context.Context, userID string, access bool) (progress.Stats, error)
}

// Handler статистика обучения.
type Handler struct {
	log     *slog.Logger
	service Service
	now     func() time.Time
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, now: time.Now}
}

// ServeHTTP godoc
// @Summary Статистика обучения
// @Description Без доступа к курсам статистика нулевая.
// @Tags Progress
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=Data}
// @Failure 401 {object} response.ErrorResponse
// @Router /progress [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.stats"

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

	access := subscription.Resolve(sess.Subscription, sess.Admin, h.now()).HasAccess()
	data := Data{Completed: []string{}}
	if access {
		completed, err := h.service.Completed(r.Context(), sess.User.ID)
		if err != nil {
			log.Error("failed to read completed videos", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
			return
		}
		data.Completed = completed
	}
	st, err := h.service.Stats(r.Context(), sess.User.ID, access)
	if err != nil {
		log.Error("failed to read progress", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}
	data.Stats = st

	render.JSON(w, r, response.OKWithData(data))
}
