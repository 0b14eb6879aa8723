// Package subscription реализует жизненный цикл подписки: создание записи
// после оплаты, чтение текущей подписки и вывод её состояния из дат.
//
// Состояние доступа всегда вычисляется по датам. Поле status в базе
// обновляется до expired лениво, при первом чтении после истечения.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/lib/plan"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// Repository описывает хранилище подписок.
type Repository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error)
	GetLatestActiveSubscription(ctx context.Context, userID string) (*models.Subscription, error)
	MarkSubscriptionExpired(ctx context.Context, id int64) error
}

// Service сервис подписок.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создаёт сервис подписок.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateInput данные для создания подписки.
type CreateInput struct {
	UserID  string
	Plan    string
	Amount  float64
	Start   time.Time
	Payment models.PaymentDetails
}

// Create вычисляет даты по плану и сохраняет активную подписку.
// Ошибка хранилища оборачивается в models.ErrPersistence.
func (s *Service) Create(ctx context.Context, in CreateInput) (models.Subscription, error) {
	const op = "subscription.Create"
	sub := models.Subscription{
		UserID:        in.UserID,
		Plan:          plan.Normalize(in.Plan),
		Amount:        in.Amount,
		StartDate:     in.Start,
		ExpiryDate:    plan.ExpiryDate(in.Start, in.Plan),
		Status:        models.SubscriptionActive,
		TransactionID: in.Payment.TransactionID,
		PaymentMethod: in.Payment.PaymentMethod,
		CardLast4:     in.Payment.CardLast4,
	}
	created, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w: %w", op, models.ErrPersistence, err)
	}
	s.log.Info("subscription created",
		sl.Op(op),
		slog.String("user_id", created.UserID),
		slog.String("plan", created.Plan),
		slog.Time("expiry_date", created.ExpiryDate),
	)
	return created, nil
}

// Current возвращает самую новую активную подписку пользователя.
// Если по датам она истекла, статус в хранилище меняется на expired
// и возвращается nil.
func (s *Service) Current(ctx context.Context, userID string, now time.Time) (*models.Subscription, error) {
	const op = "subscription.Current"
	sub, err := s.repo.GetLatestActiveSubscription(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sub == nil {
		return nil, nil
	}
	if Derive(sub, now).State != Expired {
		return sub, nil
	}
	if err = s.repo.MarkSubscriptionExpired(ctx, sub.ID); err != nil {
		s.log.Warn("failed to mark subscription expired",
			sl.Op(op),
			slog.Int64("subscription_id", sub.ID),
			sl.Err(err),
		)
	}
	return nil, nil
}
