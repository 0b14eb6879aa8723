// Package verify проверяет статус платежа у Razorpay.
package verify

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/response"
)

// Data результат проверки.
type Data struct {
	PaymentID string `json:"payment_id"`
	Verified  bool   `json:"verified"`
}

// Service проверка платежа.
type Service interface {
	Verify(ctx context.Context, paymentID string) bool
}

// Handler проверка платежа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Проверка платежа
// @Description Возвращает verified=true, если платёж захвачен. Ошибки шлюза дают false.
// @Tags Payments
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор платежа Razorpay"
// @Success 200 {object} response.Response{data=Data}
// @Router /payments/{id}/verify [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.verify"

	paymentID := chi.URLParam(r, "id")
	verified := h.service.Verify(r.Context(), paymentID)

	h.log.Debug("payment verified",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("payment_id", paymentID),
		slog.Bool("verified", verified),
	)
	render.JSON(w, r, response.OKWithData(Data{PaymentID: paymentID, Verified: verified}))
}
