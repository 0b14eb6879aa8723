package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/course-portal/internal/migrations"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, filepath.Join(root, "migrations")))
	require.NoError(t, CheckDatabaseReady(ctx, storage))
	return storage
}

func createTestUser(t *testing.T, s *Storage, email string) models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), models.User{
		ID:           uuid.NewString(),
		Name:         "Asha",
		Email:        email,
		Phone:        "+919800000000",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleUser,
	})
	require.NoError(t, err)
	return user
}

func TestStorage_Users(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	user := createTestUser(t, s, "asha@example.com")
	assert.False(t, user.CreatedAt.IsZero())

	got, err := s.GetUserByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)

	byID, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = s.CreateUser(ctx, models.User{
		ID:           uuid.NewString(),
		Name:         "Other",
		Email:        "asha@example.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
	})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStorage_Subscriptions(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()
	user := createTestUser(t, s, "subs@example.com")

	none, err := s.GetLatestActiveSubscription(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	older, err := s.CreateSubscription(ctx, models.Subscription{
		UserID:     user.ID,
		Plan:       "monthly",
		Amount:     499,
		StartDate:  start,
		ExpiryDate: start.AddDate(0, 1, 0),
		Status:     models.SubscriptionActive,
	})
	require.NoError(t, err)

	newer, err := s.CreateSubscription(ctx, models.Subscription{
		UserID:        user.ID,
		Plan:          "quarterly",
		Amount:        1499,
		StartDate:     start,
		ExpiryDate:    start.AddDate(0, 3, 0),
		Status:        models.SubscriptionActive,
		TransactionID: "pay_123",
		PaymentMethod: "razorpay",
	})
	require.NoError(t, err)
	assert.Greater(t, newer.ID, older.ID)

	latest, err := s.GetLatestActiveSubscription(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newer.ID, latest.ID)
	assert.Equal(t, "quarterly", latest.Plan)
	assert.InDelta(t, 1499, latest.Amount, 0.001)
	assert.Equal(t, "pay_123", latest.TransactionID)
	assert.True(t, latest.ExpiryDate.Equal(start.AddDate(0, 3, 0)))

	require.NoError(t, s.MarkSubscriptionExpired(ctx, newer.ID))

	latest, err = s.GetLatestActiveSubscription(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, older.ID, latest.ID)
}

func TestStorage_PaymentTransactions(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()
	user := createTestUser(t, s, "pay@example.com")

	_, err := s.RecordPaymentTransaction(ctx, models.PaymentTransaction{
		UserID:           user.ID,
		GatewayPaymentID: "pay_ok",
		GatewayOrderID:   "order_1",
		Amount:           1499,
		Currency:         "INR",
		Plan:             "quarterly",
		Status:           models.PaymentSuccess,
		PaymentMethod:    "razorpay",
	})
	require.NoError(t, err)

	_, err = s.RecordPaymentTransaction(ctx, models.PaymentTransaction{
		UserID:           user.ID,
		GatewayPaymentID: "pay_ok",
		GatewayOrderID:   "order_1",
		Amount:           1499,
		Currency:         "INR",
		Plan:             "quarterly",
		Status:           models.PaymentSuccess,
		PaymentMethod:    "razorpay",
	})
	require.ErrorIs(t, err, models.ErrDuplicatePayment)

	_, err = s.RecordPaymentTransaction(ctx, models.PaymentTransaction{
		UserID:           user.ID,
		GatewayPaymentID: "pay_bad",
		Currency:         "INR",
		Plan:             "unknown",
		Status:           models.PaymentFailed,
		ErrorCode:        "BAD_REQUEST_ERROR",
		ErrorDescription: "card declined",
		PaymentMethod:    "razorpay",
	})
	require.NoError(t, err)

	ok, err := s.HasSuccessfulPayment(ctx, "pay_ok")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HasSuccessfulPayment(ctx, "pay_bad")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.HasSuccessfulPayment(ctx, "pay_missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_LoginHistoryAndNotifications(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()
	user := createTestUser(t, s, "log@example.com")

	require.NoError(t, s.RecordLogin(ctx, models.LoginHistory{
		UserID:     user.ID,
		UserAgent:  "Mozilla/5.0 (iPhone) Mobile",
		DeviceType: models.DeviceMobile,
	}))

	var device string
	err := s.DB.QueryRow(`SELECT device_type FROM login_history WHERE user_id = $1`, user.ID).Scan(&device)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceMobile, device)

	require.NoError(t, s.LogEmailNotification(ctx, models.EmailNotificationLog{
		Type:      "login",
		UserEmail: user.Email,
		UserName:  user.Name,
		Delivered: true,
		Metadata:  map[string]any{"subscription_status": "none"},
	}))

	var (
		delivered bool
		raw       sql.NullString
	)
	err = s.DB.QueryRow(`SELECT delivered, metadata::text FROM email_notifications WHERE user_email = $1`,
		user.Email).Scan(&delivered, &raw)
	require.NoError(t, err)
	assert.True(t, delivered)

	var metadata map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw.String), &metadata))
	assert.Equal(t, "none", metadata["subscription_status"])
}
