package models

import (
	"encoding/json"
	"time"
)

// Хранимые статусы подписки.
const (
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
)

// Subscription представляет оплаченную подписку пользователя на курсы.
//
// Поле Status хранится в базе, но решения о доступе всегда принимаются
// по датам (см. subscription.Status); в статус "expired" запись переводится
// лениво, при первом чтении после истечения.
type Subscription struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Plan          string    `json:"plan"`
	Amount        float64   `json:"amount"`
	StartDate     time.Time `json:"start_date"`
	ExpiryDate    time.Time `json:"expiry_date"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	CardLast4     string    `json:"card_last4,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// subscriptionSource описывает оба исторических формата записи подписки:
// формат базы (expiry_date) и старый формат локального кеша (expiryDate).
type subscriptionSource struct {
	ID            int64      `json:"id"`
	UserID        string     `json:"user_id"`
	Plan          string     `json:"plan"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"start_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	TransactionID string     `json:"transaction_id"`
	PaymentMethod string     `json:"payment_method"`
	CardLast4     string     `json:"card_last4"`
	CreatedAt     time.Time  `json:"created_at"`

	LegacyStartDate     *time.Time `json:"startDate"`
	LegacyExpiryDate    *time.Time `json:"expiryDate"`
	LegacyTransactionID string     `json:"transactionId"`
}

// UnmarshalJSON принимает оба формата и приводит их к одной структуре,
// чтобы потребители не проверяли наличие полей сами.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	var src subscriptionSource
	if err := json.Unmarshal(data, &src); err != nil {
		return err
	}
	*s = Subscription{
		ID:            src.ID,
		UserID:        src.UserID,
		Plan:          src.Plan,
		Amount:        src.Amount,
		Status:        src.Status,
		TransactionID: src.TransactionID,
		PaymentMethod: src.PaymentMethod,
		CardLast4:     src.CardLast4,
		CreatedAt:     src.CreatedAt,
	}
	switch {
	case src.StartDate != nil:
		s.StartDate = *src.StartDate
	case src.LegacyStartDate != nil:
		s.StartDate = *src.LegacyStartDate
	}
	switch {
	case src.ExpiryDate != nil:
		s.ExpiryDate = *src.ExpiryDate
	case src.LegacyExpiryDate != nil:
		s.ExpiryDate = *src.LegacyExpiryDate
	}
	if s.TransactionID == "" {
		s.TransactionID = src.LegacyTransactionID
	}
	return nil
}

// PaymentDetails данные об оплате, сохраняемые вместе с подпиской.
type PaymentDetails struct {
	TransactionID string
	PaymentMethod string
	CardLast4     string
}
