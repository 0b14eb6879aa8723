package status

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

type SubscriptionsMock struct {
	mock.Mock
}

func (m *SubscriptionsMock) Current(ctx context.Context, userID string, now time.Time) (*models.Subscription, error) {
	args := m.Called(ctx, userID, now)
	sub, _ := args.Get(0).(*models.Subscription)
	return sub, args.Error(1)
}

type SessionsMock struct {
	mock.Mock
}

func (m *SessionsMock) UpdateSubscription(ctx context.Context, id string, sub *models.Subscription) error {
	return m.Called(ctx, id, sub).Error(0)
}

var now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func call(t *testing.T, h *Handler, sess models.Session) Data {
	t.Helper()
	h.now = func() time.Time { return now }
	req := httptest.NewRequest(http.MethodGet, "/subscription/status", nil)
	req = req.WithContext(middlewarectx.WithSession(req.Context(), "tok", sess))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data Data `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got.Data
}

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fresh := &models.Subscription{ID: 7, Plan: "annual", StartDate: now, ExpiryDate: now.AddDate(1, 0, 0), Status: "active"}

	t.Run("new subscription is written to the session", func(t *testing.T) {
		subs := new(SubscriptionsMock)
		sessions := new(SessionsMock)
		subs.On("Current", mock.Anything, "u-1", now).Return(fresh, nil).Once()
		sessions.On("UpdateSubscription", mock.Anything, "s-1", fresh).Return(nil).Once()

		got := call(t, New(logger, subs, sessions), models.Session{ID: "s-1", User: models.SessionUser{ID: "u-1"}})
		assert.Equal(t, subscription.Active, got.Status.State)
		assert.Equal(t, "Annual - Active", got.Status.StatusLabel)
		sessions.AssertExpectations(t)
	})

	t.Run("unchanged subscription is not rewritten", func(t *testing.T) {
		subs := new(SubscriptionsMock)
		sessions := new(SessionsMock)
		subs.On("Current", mock.Anything, "u-1", now).Return(fresh, nil).Once()

		cached := *fresh
		call(t, New(logger, subs, sessions), models.Session{ID: "s-1", User: models.SessionUser{ID: "u-1"}, Subscription: &cached})
		sessions.AssertNotCalled(t, "UpdateSubscription", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure falls back to cached subscription", func(t *testing.T) {
		subs := new(SubscriptionsMock)
		sessions := new(SessionsMock)
		subs.On("Current", mock.Anything, "u-1", now).
			Return(nil, &models.DegradedError{Op: "repo", Reason: errors.New("refused")}).Once()

		cached := &models.Subscription{ID: 3, Plan: "monthly", ExpiryDate: now.AddDate(0, 0, 3)}
		got := call(t, New(logger, subs, sessions), models.Session{ID: "s-1", User: models.SessionUser{ID: "u-1"}, Subscription: cached})
		assert.Equal(t, subscription.ExpiringSoon, got.Status.State)
		sessions.AssertNotCalled(t, "UpdateSubscription", mock.Anything, mock.Anything, mock.Anything)
	})
}
