// Package payment ведёт платёжную сессию через виджет Razorpay:
// выдаёт параметры оплаты, принимает результат от виджета и оформляет
// подписку после успешной оплаты.
//
// Сессия проходит состояния Idle -> AwaitingGatewayResult -> Succeeded,
// Failed или Cancelled. Повторов нет, новая оплата начинается с новой сессии.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/course-portal/internal/lib/metrics"
	"github.com/magabrotheeeer/course-portal/internal/lib/plan"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/paymentprovider"
	"github.com/magabrotheeeer/course-portal/internal/services/notification"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// Значения, которые пишутся в payment_transactions.
const (
	MethodRazorpay    = "razorpay"
	UnknownPlan       = "unknown"
	UnknownErrorCode  = "UNKNOWN_ERROR"
	defaultFailReason = "Please try again or contact support."
	// SuccessRedirect страница после успешной оплаты.
	SuccessRedirect = "/learning"
)

// Gateway платёжный шлюз.
type Gateway interface {
	KeyID() string
	Configured() bool
	CreateOrder(ctx context.Context, in paymentprovider.OrderRequest) (*paymentprovider.Order, error)
}

// Repository журнал платёжных транзакций.
type Repository interface {
	RecordPaymentTransaction(ctx context.Context, tx models.PaymentTransaction) (int64, error)
	HasSuccessfulPayment(ctx context.Context, paymentID string) (bool, error)
}

// Subscriptions создание подписки.
type Subscriptions interface {
	Create(ctx context.Context, in subscription.CreateInput) (models.Subscription, error)
}

// CheckoutStore хранилище платёжных сессий. Claim атомарно занимает
// сессию, чтобы конечный переход выполнил только один запрос.
type CheckoutStore interface {
	Save(ctx context.Context, c Checkout, ttl time.Duration) error
	Get(ctx context.Context, id string) (Checkout, error)
	Claim(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, id string) error
}

// ErrCheckoutBusy сессию уже обрабатывает другой запрос.
var ErrCheckoutBusy = fmt.Errorf("checkout is already being processed: %w", models.ErrInvalidTransition)

// LocalStore локальная копия подписки.
type LocalStore interface {
	SaveSubscription(ctx context.Context, sub models.Subscription) error
}

// Sessions обновление подписки в сессии.
type Sessions interface {
	UpdateSubscription(ctx context.Context, id string, sub *models.Subscription) error
}

// Notifier отправка уведомлений.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) bool
}

// Config параметры оплаты.
type Config struct {
	KeySecret   string
	Currency    string
	CompanyName string
	ThemeColor  string
	CheckoutTTL time.Duration
	LoginURL    string
}

// Deps зависимости сервиса.
type Deps struct {
	Gateway       Gateway
	Repository    Repository
	Subscriptions Subscriptions
	Checkouts     CheckoutStore
	Local         LocalStore
	Sessions      Sessions
	Notifier      Notifier
}

// Service сервис оплаты.
type Service struct {
	deps Deps
	cfg  Config
	log  *slog.Logger
	now  func() time.Time
}

// NewService создаёт сервис оплаты.
func NewService(deps Deps, cfg Config, log *slog.Logger) *Service {
	if cfg.CheckoutTTL <= 0 {
		cfg.CheckoutTTL = 30 * time.Minute
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	return &Service{deps: deps, cfg: cfg, log: log, now: time.Now}
}

// Checkout платёжная сессия.
type Checkout struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Plan      string    `json:"plan"`
	Amount    float64   `json:"amount"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Prefill данные покупателя для виджета.
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// Theme оформление виджета.
type Theme struct {
	Color string `json:"color"`
}

// Options параметры открытия виджета Razorpay. Amount в пайсах.
type Options struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OrderID     string            `json:"order_id,omitempty"`
	Prefill     Prefill           `json:"prefill"`
	Notes       map[string]string `json:"notes"`
	Theme       Theme             `json:"theme"`
}

// CheckoutResult открытая сессия и параметры виджета.
type CheckoutResult struct {
	Checkout Checkout
	Options  Options
}

// AmountInPaise переводит сумму в рупиях в пайсы с округлением.
func AmountInPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Description описание покупки в виджете.
func Description(planKey string) string {
	return plan.Title(planKey) + " Subscription - DevOps & AWS Training"
}

// Checkout открывает платёжную сессию для пользователя сессии sess.
// Без ключа и секрета шлюза возвращает models.ErrGatewayUnavailable.
func (s *Service) Checkout(ctx context.Context, sess models.Session, planKey string, amount float64) (CheckoutResult, error) {
	const op = "payment.Checkout"
	log := s.log.With(sl.Op(op), slog.String("user_id", sess.User.ID))

	if s.deps.Gateway == nil || !s.deps.Gateway.Configured() {
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, models.ErrGatewayUnavailable)
	}
	if amount <= 0 {
		return CheckoutResult{}, fmt.Errorf("%s: amount must be positive", op)
	}

	state, err := Next(StateIdle, EventOpen)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}
	planKey = plan.Normalize(planKey)
	c := Checkout{
		ID:        uuid.NewString(),
		State:     state,
		SessionID: sess.ID,
		UserID:    sess.User.ID,
		Name:      sess.User.Name,
		Email:     sess.User.Email,
		Phone:     sess.User.Phone,
		Plan:      planKey,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
	}
	notes := map[string]string{
		"user_id": c.UserID,
		"plan":    c.Plan,
		"email":   c.Email,
	}

	order, err := s.deps.Gateway.CreateOrder(ctx, paymentprovider.OrderRequest{
		Amount:   AmountInPaise(amount),
		Currency: s.cfg.Currency,
		Receipt:  c.ID,
		Notes:    notes,
	})
	if err != nil {
		log.Error("failed to create gateway order", sl.Err(err))
		if errors.Is(err, models.ErrGatewayUnavailable) {
			return CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
		}
		return CheckoutResult{}, fmt.Errorf("%s: %w: %w", op, models.ErrGatewayUnavailable, err)
	}
	c.OrderID = order.ID

	if err = s.deps.Checkouts.Save(ctx, c, s.cfg.CheckoutTTL); err != nil {
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("checkout opened", slog.String("checkout_id", c.ID), slog.String("plan", c.Plan))
	return CheckoutResult{
		Checkout: c,
		Options: Options{
			Key:         s.deps.Gateway.KeyID(),
			Amount:      AmountInPaise(amount),
			Currency:    s.cfg.Currency,
			Name:        s.cfg.CompanyName,
			Description: Description(c.Plan),
			OrderID:     c.OrderID,
			Prefill:     Prefill{Name: c.Name, Email: c.Email, Contact: c.Phone},
			Notes:       notes,
			Theme:       Theme{Color: s.cfg.ThemeColor},
		},
	}, nil
}

// SuccessPayload ответ виджета об успешной оплате. Данные карты приходят
// только при ручном вводе и используются лишь для последних четырёх цифр.
type SuccessPayload struct {
	PaymentID  string
	OrderID    string
	Signature  string
	CardHolder string
	CardNumber string
}

// SuccessResult оформленная подписка и адрес перехода.
type SuccessResult struct {
	Subscription models.Subscription
	Redirect     string
}

// load читает сессию и проверяет, что она принадлежит пользователю.
func (s *Service) load(ctx context.Context, checkoutID, userID string) (Checkout, error) {
	c, err := s.deps.Checkouts.Get(ctx, checkoutID)
	if err != nil {
		return Checkout{}, err
	}
	if userID != "" && c.UserID != userID {
		return Checkout{}, models.ErrNotFound
	}
	return c, nil
}

// claim занимает сессию и проверяет переход по её свежему состоянию.
// При ошибке после захвата сессия освобождается.
func (s *Service) claim(ctx context.Context, checkoutID, userID string, ev Event) (Checkout, State, error) {
	ok, err := s.deps.Checkouts.Claim(ctx, checkoutID, s.cfg.CheckoutTTL)
	if err != nil {
		return Checkout{}, "", err
	}
	if !ok {
		return Checkout{}, "", ErrCheckoutBusy
	}
	c, err := s.load(ctx, checkoutID, userID)
	if err == nil {
		var next State
		if next, err = Next(c.State, ev); err == nil {
			return c, next, nil
		}
	}
	s.release(ctx, checkoutID)
	return Checkout{}, "", err
}

func (s *Service) release(ctx context.Context, checkoutID string) {
	if err := s.deps.Checkouts.Release(ctx, checkoutID); err != nil {
		s.log.Warn("failed to release checkout", sl.Op("payment.release"),
			slog.String("checkout_id", checkoutID), sl.Err(err))
	}
}

func (s *Service) saveState(ctx context.Context, c Checkout, state State) {
	c.State = state
	if err := s.deps.Checkouts.Save(ctx, c, s.cfg.CheckoutTTL); err != nil {
		s.log.Warn("failed to save checkout state", sl.Op("payment.saveState"),
			slog.String("checkout_id", c.ID), slog.String("state", string(state)), sl.Err(err))
	}
	metrics.Payments.WithLabelValues(string(state)).Inc()
}

// Succeed обрабатывает успешную оплату: проверяет подпись, записывает
// транзакцию, создаёт подписку, обновляет сессию и отправляет письма.
// Из параллельных вызовов для одной сессии подписку оформит только один,
// остальные получат models.ErrInvalidTransition.
func (s *Service) Succeed(ctx context.Context, checkoutID, userID string, p SuccessPayload) (SuccessResult, error) {
	const op = "payment.Succeed"
	log := s.log.With(sl.Op(op), slog.String("checkout_id", checkoutID))

	c, err := s.load(ctx, checkoutID, userID)
	if err != nil {
		return SuccessResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = Next(c.State, EventSucceed); err != nil {
		return SuccessResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if strings.TrimSpace(p.PaymentID) == "" {
		return SuccessResult{}, fmt.Errorf("%s: %w: empty payment id", op, models.ErrInvalidSignature)
	}
	if c.OrderID == "" || p.OrderID != c.OrderID ||
		!paymentprovider.VerifyPaymentSignature(s.cfg.KeySecret, c.OrderID, p.PaymentID, p.Signature) {
		log.Warn("payment signature mismatch", slog.String("payment_id", p.PaymentID))
		return SuccessResult{}, fmt.Errorf("%s: %w", op, models.ErrInvalidSignature)
	}

	c, next, err := s.claim(ctx, checkoutID, userID, EventSucceed)
	if err != nil {
		return SuccessResult{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	_, err = s.deps.Repository.RecordPaymentTransaction(ctx, models.PaymentTransaction{
		UserID:           c.UserID,
		GatewayPaymentID: p.PaymentID,
		GatewayOrderID:   p.OrderID,
		GatewaySignature: p.Signature,
		Amount:           c.Amount,
		Currency:         s.cfg.Currency,
		Plan:             c.Plan,
		Status:           models.PaymentSuccess,
		PaymentMethod:    MethodRazorpay,
		CreatedAt:        now,
	})
	switch {
	case errors.Is(err, models.ErrDuplicatePayment):
		log.Info("payment already recorded, finishing subscription", slog.String("payment_id", p.PaymentID))
	case err != nil:
		log.Error("failed to record payment", slog.String("payment_id", p.PaymentID), sl.Err(err))
		s.release(ctx, checkoutID)
		return SuccessResult{}, fmt.Errorf("%s: %w: %w", op, models.ErrPersistence, err)
	}

	details := models.PaymentDetails{TransactionID: p.PaymentID, PaymentMethod: MethodRazorpay}
	if strings.TrimSpace(p.CardNumber) != "" {
		details.CardLast4 = notification.CardLast4(p.CardNumber)
	}
	sub, err := s.deps.Subscriptions.Create(ctx, subscription.CreateInput{
		UserID:  c.UserID,
		Plan:    c.Plan,
		Amount:  c.Amount,
		Start:   now,
		Payment: details,
	})
	if err != nil {
		log.Error("payment recorded but subscription was not created",
			slog.String("payment_id", p.PaymentID), sl.Err(err))
		s.release(ctx, checkoutID)
		return SuccessResult{}, fmt.Errorf("%s: %w", op, err)
	}

	s.saveState(ctx, c, next)

	if s.deps.Local != nil {
		if err = s.deps.Local.SaveSubscription(ctx, sub); err != nil {
			log.Warn("failed to mirror subscription locally", sl.Err(err))
		}
	}
	if s.deps.Sessions != nil && c.SessionID != "" {
		if err = s.deps.Sessions.UpdateSubscription(ctx, c.SessionID, &sub); err != nil {
			log.Warn("failed to refresh session subscription", sl.Err(err))
		}
	}

	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(ctx, notification.Subscription{
			Name:          c.Name,
			Email:         c.Email,
			Phone:         c.Phone,
			Plan:          sub.Plan,
			Amount:        sub.Amount,
			Start:         sub.StartDate,
			Expiry:        sub.ExpiryDate,
			CardHolder:    p.CardHolder,
			CardNumber:    p.CardNumber,
			TransactionID: p.PaymentID,
		})
		s.deps.Notifier.Notify(ctx, notification.PaymentConfirmation{
			Name:          c.Name,
			Email:         c.Email,
			Plan:          sub.Plan,
			Amount:        sub.Amount,
			TransactionID: p.PaymentID,
			LoginURL:      s.cfg.LoginURL,
		})
	}

	log.Info("payment succeeded", slog.String("payment_id", p.PaymentID), slog.Int64("subscription_id", sub.ID))
	return SuccessResult{Subscription: sub, Redirect: SuccessRedirect}, nil
}

// GatewayError ошибка оплаты, которую сообщил виджет.
type GatewayError struct {
	Code        string
	Description string
	Reason      string
	PaymentID   string
	OrderID     string
}

// FailureMessage текст для пользователя: причина, описание или
// стандартная подсказка.
func FailureMessage(e GatewayError) string {
	switch {
	case e.Reason != "":
		return e.Reason
	case e.Description != "":
		return e.Description
	default:
		return defaultFailReason
	}
}

// Fail фиксирует неудачную оплату транзакцией с нулевой суммой и
// возвращает *models.PaymentFailedError. Ошибка записи только логируется.
func (s *Service) Fail(ctx context.Context, checkoutID, userID string, e GatewayError) error {
	const op = "payment.Fail"
	log := s.log.With(sl.Op(op), slog.String("checkout_id", checkoutID))

	c, next, err := s.claim(ctx, checkoutID, userID, EventFail)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	code := e.Code
	if code == "" {
		code = UnknownErrorCode
	}
	description := e.Description
	if description == "" {
		description = e.Reason
	}
	if description == "" {
		description = "Payment failed"
	}
	_, err = s.deps.Repository.RecordPaymentTransaction(ctx, models.PaymentTransaction{
		UserID:           c.UserID,
		GatewayPaymentID: e.PaymentID,
		GatewayOrderID:   e.OrderID,
		Amount:           0,
		Currency:         s.cfg.Currency,
		Plan:             UnknownPlan,
		Status:           models.PaymentFailed,
		ErrorCode:        code,
		ErrorDescription: description,
		PaymentMethod:    MethodRazorpay,
		CreatedAt:        s.now().UTC(),
	})
	if err != nil {
		log.Error("failed to log failed payment", sl.Err(err))
	}

	s.saveState(ctx, c, next)
	log.Info("payment failed", slog.String("code", code))
	return &models.PaymentFailedError{Reason: FailureMessage(e)}
}

// Cancel закрывает сессию, когда пользователь закрыл виджет.
// Ничего не записывает и возвращает models.ErrPaymentCancelled.
func (s *Service) Cancel(ctx context.Context, checkoutID, userID string) error {
	const op = "payment.Cancel"
	c, next, err := s.claim(ctx, checkoutID, userID, EventCancel)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.saveState(ctx, c, next)
	return fmt.Errorf("%s: %w", op, models.ErrPaymentCancelled)
}

// Verify сообщает, есть ли успешная транзакция с таким идентификатором
// платежа. Ошибка хранилища означает "не подтверждено".
func (s *Service) Verify(ctx context.Context, paymentID string) bool {
	const op = "payment.Verify"
	ok, err := s.deps.Repository.HasSuccessfulPayment(ctx, paymentID)
	if err != nil {
		s.log.Warn("failed to verify payment", sl.Op(op), slog.String("payment_id", paymentID), sl.Err(err))
		return false
	}
	return ok
}
