package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// RecordPaymentTransaction добавляет запись о попытке оплаты. Записи не изменяются.
// Повторная успешная запись того же платежа возвращает models.ErrDuplicatePayment.
func (s *Storage) RecordPaymentTransaction(ctx context.Context, tx models.PaymentTransaction) (int64, error) {
	const op = "storage.RecordPaymentTransaction"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO payment_transactions (user_id, razorpay_payment_id, razorpay_order_id,
			      razorpay_signature, amount, currency, plan, status, error_code,
			      error_description, payment_method)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id;`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query,
		nullString(tx.UserID), nullString(tx.GatewayPaymentID), nullString(tx.GatewayOrderID),
		nullString(tx.GatewaySignature), tx.Amount, tx.Currency, tx.Plan, tx.Status,
		nullString(tx.ErrorCode), nullString(tx.ErrorDescription), tx.PaymentMethod,
	).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, models.ErrDuplicatePayment)
		}
		return 0, classify(op, err)
	}
	return id, nil
}

// HasSuccessfulPayment сообщает, есть ли успешная транзакция с данным ID платежа шлюза.
func (s *Storage) HasSuccessfulPayment(ctx context.Context, paymentID string) (bool, error) {
	const op = "storage.HasSuccessfulPayment"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS (
			      SELECT 1 FROM payment_transactions
			      WHERE razorpay_payment_id = $1 AND status = $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, paymentID, models.PaymentSuccess).Scan(&exists); err != nil {
		return false, classify(op, err)
	}
	return exists, nil
}
