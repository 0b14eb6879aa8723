package subscription_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(models.Subscription), args.Error(1)
}

func (m *RepositoryMock) GetLatestActiveSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	args := m.Called(ctx, userID)
	sub, _ := args.Get(0).(*models.Subscription)
	return sub, args.Error(1)
}

func (m *RepositoryMock) MarkSubscriptionExpired(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestDerive_Boundaries(t *testing.T) {
	now := time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sub      *models.Subscription
		wantDays int
		want     subscription.State
		access   bool
	}{
		{
			name: "no subscription",
			sub:  nil,
			want: subscription.NoSubscription,
		},
		{
			name: "missing expiry",
			sub:  &models.Subscription{Plan: "monthly"},
			want: subscription.NoSubscription,
		},
		{
			name:     "minus one day",
			sub:      &models.Subscription{ExpiryDate: now.AddDate(0, 0, -1)},
			wantDays: -1,
			want:     subscription.Expired,
		},
		{
			name:     "zero days",
			sub:      &models.Subscription{ExpiryDate: now},
			wantDays: 0,
			want:     subscription.ExpiringSoon,
			access:   true,
		},
		{
			name:     "seven days",
			sub:      &models.Subscription{ExpiryDate: now.AddDate(0, 0, 7)},
			wantDays: 7,
			want:     subscription.ExpiringSoon,
			access:   true,
		},
		{
			name:     "eight days",
			sub:      &models.Subscription{ExpiryDate: now.AddDate(0, 0, 8)},
			wantDays: 8,
			want:     subscription.Active,
			access:   true,
		},
		{
			name:     "partial day rounds up",
			sub:      &models.Subscription{ExpiryDate: now.Add(7*24*time.Hour + time.Hour)},
			wantDays: 8,
			want:     subscription.Active,
			access:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subscription.Derive(tt.sub, now)
			assert.Equal(t, tt.want, got.State)
			assert.Equal(t, tt.wantDays, got.DaysRemaining)
			assert.Equal(t, tt.access, got.HasAccess())
		})
	}
}

func TestDerive_IgnoresStoredStatus(t *testing.T) {
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	sub := &models.Subscription{
		Status:     models.SubscriptionExpired,
		ExpiryDate: now.AddDate(0, 1, 0),
	}

	assert.Equal(t, subscription.Active, subscription.Derive(sub, now).State)
}

func TestResolve_AdminOverride(t *testing.T) {
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	st := subscription.Resolve(nil, true, now)
	assert.Equal(t, subscription.AdminAccess, st.State)
	assert.True(t, st.HasAccess())

	expired := &models.Subscription{ExpiryDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, subscription.AdminAccess, subscription.Resolve(expired, true, now).State)
	assert.Equal(t, subscription.Expired, subscription.Resolve(expired, false, now).State)
}

func TestScenario_QuarterlyExpiringSoon(t *testing.T) {
	repo := new(RepositoryMock)
	svc := subscription.NewService(repo, newNoopLogger())
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
		return s.UserID == "asha" && s.Plan == "quarterly" && s.Amount == 1499 &&
			s.Status == models.SubscriptionActive &&
			s.ExpiryDate.Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))
	})).Return(models.Subscription{
		ID:         1,
		UserID:     "asha",
		Plan:       "quarterly",
		Amount:     1499,
		StartDate:  start,
		ExpiryDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.SubscriptionActive,
	}, nil).Once()

	sub, err := svc.Create(context.Background(), subscription.CreateInput{
		UserID: "asha",
		Plan:   "quarterly",
		Amount: 1499,
		Start:  start,
	})
	require.NoError(t, err)

	st := subscription.Derive(&sub, time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, subscription.ExpiringSoon, st.State)
	assert.Equal(t, 5, st.DaysRemaining)
	assert.True(t, st.HasAccess())
	repo.AssertExpectations(t)
}

func TestService_CreatePersistenceError(t *testing.T) {
	repo := new(RepositoryMock)
	svc := subscription.NewService(repo, newNoopLogger())

	repo.On("CreateSubscription", mock.Anything, mock.Anything).
		Return(models.Subscription{}, errors.New("db down")).Once()

	_, err := svc.Create(context.Background(), subscription.CreateInput{UserID: "u", Plan: "monthly"})
	assert.ErrorIs(t, err, models.ErrPersistence)
	assert.ErrorContains(t, err, "db down")
}

func TestService_Current(t *testing.T) {
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		stored   *models.Subscription
		storeErr error
		markErr  error
		wantMark bool
		wantNil  bool
		wantErr  bool
	}{
		{
			name:    "no subscription",
			stored:  nil,
			wantNil: true,
		},
		{
			name:   "active subscription returned",
			stored: &models.Subscription{ID: 1, ExpiryDate: now.AddDate(0, 1, 0), Status: models.SubscriptionActive},
		},
		{
			name:     "expired subscription is marked lazily",
			stored:   &models.Subscription{ID: 2, ExpiryDate: now.AddDate(0, 0, -3), Status: models.SubscriptionActive},
			wantMark: true,
			wantNil:  true,
		},
		{
			name:     "mark failure is not fatal",
			stored:   &models.Subscription{ID: 3, ExpiryDate: now.AddDate(0, 0, -3), Status: models.SubscriptionActive},
			markErr:  errors.New("update failed"),
			wantMark: true,
			wantNil:  true,
		},
		{
			name:     "store error",
			storeErr: &models.DegradedError{Op: "storage", Reason: errors.New("conn refused")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepositoryMock)
			svc := subscription.NewService(repo, newNoopLogger())

			repo.On("GetLatestActiveSubscription", mock.Anything, "u-1").Return(tt.stored, tt.storeErr).Once()
			if tt.wantMark {
				repo.On("MarkSubscriptionExpired", mock.Anything, tt.stored.ID).Return(tt.markErr).Once()
			}

			got, err := svc.Current(context.Background(), "u-1", now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, models.IsDegraded(err))
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, tt.stored, got)
			}
			repo.AssertExpectations(t)
		})
	}
}
