package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/course-portal/internal/cache"
	"github.com/magabrotheeeer/course-portal/internal/config"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	c, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return NewStore(c), mr
}

func testSession() models.Session {
	return models.Session{
		ID: "sess-1",
		User: models.SessionUser{
			ID:    "u-1",
			Name:  "Asha",
			Email: "asha@example.com",
			Phone: "+919800000000",
		},
		LoginTime: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveGetDelete(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	sess := testSession()
	require.NoError(t, store.Save(ctx, sess, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("session:sess-1"))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.User, got.User)
	assert.Nil(t, got.Subscription)
	assert.False(t, got.Admin)

	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestStore_Expires(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestStore_UpdateSubscriptionKeepsTTL(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession(), time.Hour))
	mr.FastForward(10 * time.Minute)

	sub := &models.Subscription{
		UserID:     "u-1",
		Plan:       "quarterly",
		Amount:     1499,
		ExpiryDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.SubscriptionActive,
	}
	require.NoError(t, store.UpdateSubscription(ctx, "sess-1", sub))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got.Subscription)
	assert.Equal(t, "quarterly", got.Subscription.Plan)
	assert.Equal(t, 50*time.Minute, mr.TTL("session:sess-1"))
}

func TestStore_UpdateSubscriptionMissingSession(t *testing.T) {
	store, _ := setupStore(t)

	err := store.UpdateSubscription(context.Background(), "nope", &models.Subscription{})
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestStore_UpdateSubscriptionExpiredSession(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession(), time.Minute))
	mr.FastForward(2 * time.Minute)

	err := store.UpdateSubscription(ctx, "sess-1", &models.Subscription{Plan: "monthly"})
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.False(t, mr.Exists("session:sess-1"))
}
