// Package failure принимает от клиента ошибку оплаты из виджета Razorpay.
package failure

import (
	"context"
	"encoding/json"
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
	"github.com/magabrotheeeer/course-portal/internal/services/payment"
)

// Request объект error из события payment.failed.
type Request struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Reason      string   `json:"reason"`
	Metadata    Metadata `json:"metadata"`
}

// Metadata идентификаторы платежа из события.
type Metadata struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
}

// Service обработка ошибки оплаты.
type Service interface {
	Fail(ctx context.Context, checkoutID, userID string, e payment.GatewayError) error
}

// Handler ошибка оплаты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Ошибка оплаты
// @Description Записывает неудачную попытку и возвращает сообщение для пользователя.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор платёжной сессии"
// @Param request body Request true "Ошибка виджета"
// @Success 402 {object} response.ErrorResponse "Payment failed. <причина>"
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /payments/{id}/failure [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.failure"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	err := h.service.Fail(r.Context(), checkoutID, sess.User.ID, payment.GatewayError{
		Code:        req.Code,
		Description: req.Description,
		Reason:      req.Reason,
		PaymentID:   req.Metadata.PaymentID,
		OrderID:     req.Metadata.OrderID,
	})
	var failed *models.PaymentFailedError
	if !errors.As(err, &failed) {
		log.Error("failed to register payment failure", sl.Err(err))
	}
	code, msg := response.FromError(err)
	render.Status(r, code)
	render.JSON(w, r, response.Error(msg))
}
