// Package checkout открывает платёжную сессию и отдаёт параметры
// для виджета Razorpay.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/payment"
)

// Request выбранный план и сумма в рупиях.
type Request struct {
	Plan   string  `json:"plan" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Data идентификатор сессии оплаты и параметры виджета.
type Data struct {
	CheckoutID string          `json:"checkout_id"`
	Options    payment.Options `json:"options"`
}

// Service открытие оплаты.
type Service interface {
	Checkout(ctx context.Context, sess models.Session, planKey string, amount float64) (payment.CheckoutResult, error)
}

// Handler открывает оплату.
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
// @Summary Открыть оплату
// @Description Создаёт платёжную сессию. Сумма в ответе указана в пайсах.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "План и сумма"
// @Success 201 {object} response.Response{data=Data}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Платёжный шлюз не настроен"
// @Router /payments/checkout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.checkout"

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

	res, err := h.service.Checkout(r.Context(), sess, req.Plan, req.Amount)
	if err != nil {
		log.Error("checkout failed", sl.Err(err))
		code, msg := response.FromError(err)
		render.Status(r, code)
		render.JSON(w, r, response.Error(msg))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(Data{CheckoutID: res.Checkout.ID, Options: res.Options}))
}
