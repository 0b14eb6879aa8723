package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// CreateSubscription сохраняет подписку и возвращает её с присвоенным ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return models.Subscription{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO subscriptions (user_id, plan, amount, start_date, expiry_date,
			      status, transaction_id, payment_method, card_last4)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at;`
	if err := s.DB.QueryRowContext(ctx, query,
		sub.UserID, sub.Plan, sub.Amount, sub.StartDate, sub.ExpiryDate, sub.Status,
		nullString(sub.TransactionID), nullString(sub.PaymentMethod), nullString(sub.CardLast4),
	).Scan(&sub.ID, &sub.CreatedAt); err != nil {
		return models.Subscription{}, classify(op, err)
	}
	return sub, nil
}

// GetLatestActiveSubscription возвращает самую новую подписку со статусом active.
// Если подписок нет, возвращает nil без ошибки.
func (s *Storage) GetLatestActiveSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	const op = "storage.GetLatestActiveSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, user_id, plan, amount, start_date, expiry_date, status,
			      transaction_id, payment_method, card_last4, created_at
			  FROM subscriptions
			  WHERE user_id = $1 AND status = $2
			  ORDER BY created_at DESC, id DESC
			  LIMIT 1`
	var (
		sub                                  models.Subscription
		transactionID, paymentMethod, last4 sql.NullString
	)
	err := s.DB.QueryRowContext(ctx, query, userID, models.SubscriptionActive).Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.Amount, &sub.StartDate, &sub.ExpiryDate, &sub.Status,
		&transactionID, &paymentMethod, &last4, &sub.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(op, err)
	}
	sub.TransactionID = transactionID.String
	sub.PaymentMethod = paymentMethod.String
	sub.CardLast4 = last4.String
	return &sub, nil
}

// MarkSubscriptionExpired переводит подписку в статус expired.
func (s *Storage) MarkSubscriptionExpired(ctx context.Context, id int64) error {
	const op = "storage.MarkSubscriptionExpired"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `UPDATE subscriptions
			  SET status = $1
			  WHERE id = $2 AND status <> $1`
	if _, err := s.DB.ExecContext(ctx, query, models.SubscriptionExpired, id); err != nil {
		return classify(op, err)
	}
	return nil
}
