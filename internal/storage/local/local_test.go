package local

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
	return New(c), mr
}

func TestStore_Users(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	user := models.User{
		ID:           "u-1",
		Name:         "Asha",
		Email:        "Asha@Example.com",
		Phone:        "+919800000000",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         models.RoleUser,
	}
	require.NoError(t, store.SaveUser(ctx, user))

	got, err := store.GetUserByEmail(ctx, " asha@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)

	raw, err := mr.Get("local:users:asha@example.com")
	require.NoError(t, err)
	assert.NotContains(t, raw, "password123")

	_, err = store.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_Subscription(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	none, err := store.GetSubscription(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, none)

	sub := models.Subscription{
		ID:         7,
		UserID:     "u-1",
		Plan:       "quarterly",
		Amount:     1499,
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.SubscriptionActive,
	}
	require.NoError(t, store.SaveSubscription(ctx, sub))

	got, err := store.GetSubscription(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sub.Plan, got.Plan)
	assert.True(t, sub.ExpiryDate.Equal(got.ExpiryDate))
}

func TestStore_LegacySubscriptionFormat(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, mr.Set("local:subscription:u-2",
		`{"plan":"monthly","amount":499,"startDate":"2024-01-10T00:00:00Z","expiryDate":"2024-02-10T00:00:00Z","transactionId":"pay_legacy","status":"active"}`))

	got, err := store.GetSubscription(context.Background(), "u-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), got.ExpiryDate.UTC())
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got.StartDate.UTC())
	assert.Equal(t, "pay_legacy", got.TransactionID)
}

func TestStore_Notifications(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	empty, err := store.ListNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ts := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.AppendNotification(ctx, models.StoredNotification{
		Type:      "registration",
		Data:      map[string]any{"name": "Asha", "email": "asha@example.com"},
		Timestamp: ts,
	}))
	require.NoError(t, store.AppendNotification(ctx, models.StoredNotification{
		Type:      "login",
		Data:      map[string]any{"name": "Asha"},
		Timestamp: ts.Add(time.Minute),
	}))

	got, err := store.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "registration", got[0].Type)
	assert.Equal(t, "login", got[1].Type)
	assert.Equal(t, "asha@example.com", got[0].Data["email"])
	assert.True(t, ts.Equal(got[0].Timestamp))
}
