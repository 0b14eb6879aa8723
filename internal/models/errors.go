package models

import (
	"errors"
	"fmt"
)

// Ошибки бизнес-уровня.
var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPersistence          = errors.New("failed to persist record")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrPaymentCancelled     = errors.New("payment cancelled")
	ErrNotificationDelivery = errors.New("notification delivery failed")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("invalid checkout state transition")
	ErrInvalidSignature     = errors.New("invalid payment signature")
	ErrUnauthenticated      = errors.New("session is missing or expired")
	ErrDuplicatePayment     = errors.New("payment already recorded")
)

// PaymentFailedError отказ платёжного шлюза с причиной для пользователя.
type PaymentFailedError struct {
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return "Payment failed. " + e.Reason
}

// DegradedError означает, что удалённое хранилище недоступно и операцию
// можно повторить на локальном хранилище. Решение принимает вызывающий код.
type DegradedError struct {
	Op     string
	Reason error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrStoreUnavailable, e.Reason)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrStoreUnavailable).
func (e *DegradedError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.Reason}
}

// IsDegraded сообщает, что ошибка вызвана недоступностью хранилища.
func IsDegraded(err error) bool {
	var d *DegradedError
	return errors.As(err, &d)
}
