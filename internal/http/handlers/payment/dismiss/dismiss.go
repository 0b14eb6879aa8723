// Package dismiss закрывает платёжную сессию, когда пользователь закрыл
// окно оплаты.
package dismiss

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// Service отмена оплаты.
type Service interface {
	Cancel(ctx context.Context, checkoutID, userID string) error
}

// Handler отмена оплаты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отмена оплаты
// @Tags Payments
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор платёжной сессии"
// @Success 200 {object} response.ErrorResponse "payment cancelled"
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /payments/{id}/dismiss [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.dismiss"

	checkoutID := chi.URLParam(r, "id")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("checkout_id", checkoutID),
	)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	err := h.service.Cancel(r.Context(), checkoutID, sess.User.ID)
	if !errors.Is(err, models.ErrPaymentCancelled) {
		log.Error("failed to cancel checkout", sl.Err(err))
	} else {
		log.Info("payment cancelled by user")
	}
	code, msg := response.FromError(err)
	render.Status(r, code)
	render.JSON(w, r, response.Error(msg))
}
