// Package success принимает от клиента результат успешной оплаты
// в виджете Razorpay.
//
// Данные карты приходят только при ручном вводе, в хранилище и журналы
// попадают лишь последние четыре цифры.
package success

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/payment"
)

// Request ответ виджета и необязательные данные карты.
type Request struct {
	PaymentID  string `json:"razorpay_payment_id" validate:"required"`
	OrderID    string `json:"razorpay_order_id"`
	Signature  string `json:"razorpay_signature"`
	CardHolder string `json:"card_holder"`
	CardNumber string `json:"card_number"`
}

// Data оформленная подписка и адрес перехода.
type Data struct {
	Subscription models.Subscription `json:"subscription"`
	Redirect     string              `json:"redirect"`
}

// Service завершение оплаты.
type Service interface {
	Succeed(ctx context.Context, checkoutID, userID string, p payment.SuccessPayload) (payment.SuccessResult, error)
}

// Handler успешная оплата.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, validate: validator.New()}
}

// ServeHTTP godoc
// @Summary Успешная оплата
// @Description Проверяет подпись платежа, записывает транзакцию и оформляет подписку.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор платёжной сессии"
// @Param request body Request true "Ответ виджета"
// @Success 200 {object} response.Response{data=Data}
// @Failure 400 {object} response.ErrorResponse "Подпись не прошла проверку"
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Сессия уже завершена"
// @Failure 500 {object} response.ErrorResponse
// @Router /payments/{id}/success [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.success"

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

	res, err := h.service.Succeed(r.Context(), checkoutID, sess.User.ID, payment.SuccessPayload{
		PaymentID:  req.PaymentID,
		OrderID:    req.OrderID,
		Signature:  req.Signature,
		CardHolder: req.CardHolder,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		log.Error("payment completion failed", slog.String("payment_id", req.PaymentID), sl.Err(err))
		code, msg := response.FromError(err)
		render.Status(r, code)
		render.JSON(w, r, response.Error(msg))
		return
	}

	render.JSON(w, r, response.OKWithData(Data{Subscription: res.Subscription, Redirect: res.Redirect}))
}
