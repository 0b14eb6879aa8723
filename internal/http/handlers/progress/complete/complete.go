// Package complete отмечает видео курса просмотренным.
package complete

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/services/progress"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// Request просмотренное видео.
type Request struct {
	VideoID string `json:"video_id" validate:"required,max=200"`
}

// Data результат отметки и обновлённая статистика.
type Data struct {
	Added bool           `json:"added"`
	Stats progress.Stats `json:"stats"`
}

// Service хранилище прогресса.
type Service interface {
	MarkCompleted(ctx context.Context, userID, videoID string) (bool, error)
	Stats(ctx context.Context, userID string, access bool) (progress.Stats, error)
}

// Handler отметка просмотра.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	now      func() time.Time
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, validate: validator.New(), now: time.Now}
}

// ServeHTTP godoc
// @Summary Отметить видео просмотренным
// @Tags Progress
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Видео"
// @Success 200 {object} response.Response{data=Data}
// @Failure 403 {object} response.ErrorResponse "Нет доступа к курсам"
// @Failure 422 {object} response.ErrorResponse
// @Router /progress/videos [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.complete"

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
	if !subscription.Resolve(sess.Subscription, sess.Admin, h.now()).HasAccess() {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("active subscription required"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request body"))
			return
		}
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(verrs))
		return
	}

	added, err := h.service.MarkCompleted(r.Context(), sess.User.ID, req.VideoID)
	if err != nil {
		log.Error("failed to mark video", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}
	stats, err := h.service.Stats(r.Context(), sess.User.ID, true)
	if err != nil {
		log.Error("failed to read progress", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, response.OKWithData(Data{Added: added, Stats: stats}))
}
