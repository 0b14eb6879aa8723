// Package local реализует локальное резервное хранилище в Redis.
// Оно используется, когда PostgreSQL недоступен: копия пользователя
// (только bcrypt-хэш пароля), последняя подписка и журнал уведомлений.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/course-portal/internal/cache"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// Ключи Redis.
const (
	userKeyPrefix         = "local:users:"
	subscriptionKeyPrefix = "local:subscription:"
	// NotificationsKey список резервного журнала уведомлений.
	NotificationsKey = "emailNotifications"
)

// Store локальное хранилище поверх кеша.
type Store struct {
	cache *cache.Cache
}

// New создаёт Store.
func New(c *cache.Cache) *Store {
	return &Store{cache: c}
}

func userKey(email string) string {
	return userKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// SaveUser сохраняет копию пользователя.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	const op = "local.SaveUser"
	if err := s.cache.Set(ctx, userKey(user.Email), user, 0); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByEmail возвращает копию пользователя или models.ErrNotFound.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "local.GetUserByEmail"
	var user models.User
	found, err := s.cache.Get(ctx, userKey(email), &user)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.User{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return user, nil
}

// SaveSubscription сохраняет последнюю известную подписку пользователя.
func (s *Store) SaveSubscription(ctx context.Context, sub models.Subscription) error {
	const op = "local.SaveSubscription"
	if err := s.cache.Set(ctx, subscriptionKeyPrefix+sub.UserID, sub, 0); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetSubscription возвращает сохранённую подписку или nil, если её нет.
func (s *Store) GetSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	const op = "local.GetSubscription"
	var sub models.Subscription
	found, err := s.cache.Get(ctx, subscriptionKeyPrefix+userID, &sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, nil
	}
	return &sub, nil
}

// AppendNotification добавляет запись в конец журнала уведомлений.
func (s *Store) AppendNotification(ctx context.Context, n models.StoredNotification) error {
	const op = "local.AppendNotification"
	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.cache.Db.RPush(ctx, NotificationsKey, raw).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListNotifications возвращает журнал уведомлений в порядке добавления.
func (s *Store) ListNotifications(ctx context.Context) ([]models.StoredNotification, error) {
	const op = "local.ListNotifications"
	items, err := s.cache.Db.LRange(ctx, NotificationsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]models.StoredNotification, 0, len(items))
	for _, item := range items {
		var n models.StoredNotification
		if err = json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, n)
	}
	return result, nil
}
