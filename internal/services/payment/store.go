package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/cache"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

const (
	checkoutKeyPrefix = "checkout:"
	lockKeySuffix     = ":lock"
)

// RedisStore хранит платёжные сессии в Redis.
type RedisStore struct {
	cache *cache.Cache
}

// NewRedisStore создаёт хранилище платёжных сессий.
func NewRedisStore(c *cache.Cache) *RedisStore {
	return &RedisStore{cache: c}
}

// Save записывает сессию с временем жизни ttl.
func (s *RedisStore) Save(ctx context.Context, c Checkout, ttl time.Duration) error {
	const op = "payment.RedisStore.Save"
	if err := s.cache.Set(ctx, checkoutKeyPrefix+c.ID, c, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get возвращает сессию или models.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (Checkout, error) {
	const op = "payment.RedisStore.Get"
	var c Checkout
	found, err := s.cache.Get(ctx, checkoutKeyPrefix+id, &c)
	if err != nil {
		return Checkout{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return Checkout{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return c, nil
}

// Claim занимает сессию для перехода в конечное состояние. Возвращает
// false, если сессию уже занял другой запрос.
func (s *RedisStore) Claim(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	const op = "payment.RedisStore.Claim"
	ok, err := s.cache.SetNX(ctx, checkoutKeyPrefix+id+lockKeySuffix, time.Now().UTC(), ttl)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

// Release освобождает сессию, занятую Claim.
func (s *RedisStore) Release(ctx context.Context, id string) error {
	const op = "payment.RedisStore.Release"
	if err := s.cache.Invalidate(ctx, checkoutKeyPrefix+id+lockKeySuffix); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
