// Package session хранит сессии пользователей в единственном кеше Redis.
// Ключ сессии session:<id>, время жизни равно времени жизни токена.
// Одновременные записи разрешаются по правилу "последняя запись побеждает".
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/cache"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

const keyPrefix = "session:"

// Store хранилище сессий.
type Store struct {
	cache *cache.Cache
}

// NewStore создаёт хранилище сессий.
func NewStore(c *cache.Cache) *Store {
	return &Store{cache: c}
}

func key(id string) string {
	return keyPrefix + id
}

// Save записывает сессию целиком.
func (s *Store) Save(ctx context.Context, sess models.Session, ttl time.Duration) error {
	const op = "session.Save"
	if err := s.cache.Set(ctx, key(sess.ID), sess, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get возвращает сессию или models.ErrUnauthenticated, если её нет.
func (s *Store) Get(ctx context.Context, id string) (models.Session, error) {
	const op = "session.Get"
	var sess models.Session
	found, err := s.cache.Get(ctx, key(id), &sess)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.Session{}, fmt.Errorf("%s: %w", op, models.ErrUnauthenticated)
	}
	return sess, nil
}

// Delete удаляет сессию.
func (s *Store) Delete(ctx context.Context, id string) error {
	const op = "session.Delete"
	if err := s.cache.Invalidate(ctx, key(id)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateSubscription заменяет подписку в сессии, сохраняя оставшееся время
// жизни. Если сессия истекла, возвращает models.ErrUnauthenticated и не
// создаёт её заново.
func (s *Store) UpdateSubscription(ctx context.Context, id string, sub *models.Subscription) error {
	const op = "session.UpdateSubscription"
	sess, err := s.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	sess.Subscription = sub
	replaced, err := s.cache.Replace(ctx, key(id), sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !replaced {
		return fmt.Errorf("%s: %w", op, models.ErrUnauthenticated)
	}
	return nil
}
