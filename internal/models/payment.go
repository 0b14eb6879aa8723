package models

import "time"

// Статусы платёжной транзакции.
const (
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// PaymentTransaction неизменяемая запись об одной попытке оплаты.
// Используется только для аудита и проверки платежа.
type PaymentTransaction struct {
	ID               int64
	UserID           string
	GatewayPaymentID string
	GatewayOrderID   string
	GatewaySignature string
	Amount           float64
	Currency         string
	Plan             string
	Status           string
	ErrorCode        string
	ErrorDescription string
	PaymentMethod    string
	CreatedAt        time.Time
}
