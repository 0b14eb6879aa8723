package complete

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/progress"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) MarkCompleted(ctx context.Context, userID, videoID string) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *ServiceMock) Stats(ctx context.Context, userID string, access bool) (progress.Stats, error) {
	args := m.Called(ctx, userID, access)
	return args.Get(0).(progress.Stats), args.Error(1)
}

func TestCompleteHandler_ServeHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	active := &models.Subscription{ID: 1, Plan: "monthly", Status: "active", ExpiryDate: now.AddDate(0, 1, 0)}
	expired := &models.Subscription{ID: 1, Plan: "monthly", Status: "active", ExpiryDate: now.AddDate(0, 0, -1)}

	tests := []struct {
		name         string
		session      models.Session
		body         string
		mockSetup    func(*ServiceMock)
		wantCode     int
		wantResponse string
	}{
		{
			name:    "first view",
			session: models.Session{User: models.SessionUser{ID: "u-1"}, Subscription: active},
			body:    `{"video_id":"intro"}`,
			mockSetup: func(m *ServiceMock) {
				m.On("MarkCompleted", mock.Anything, "u-1", "intro").Return(true, nil).Once()
				m.On("Stats", mock.Anything, "u-1", true).
					Return(progress.Stats{VideosCompleted: 1, LearningHours: 0.3}, nil).Once()
			},
			wantCode:     http.StatusOK,
			wantResponse: `{"status":"OK","data":{"added":true,"stats":{"videos_completed":1,"learning_hours":0.3}}}`,
		},
		{
			name:         "admin without subscription",
			session:      models.Session{User: models.SessionUser{ID: "u-2"}, Admin: true},
			body:         `{"video_id":""}`,
			mockSetup:    func(_ *ServiceMock) {},
			wantCode:     http.StatusUnprocessableEntity,
			wantResponse: `{"status":"Error","error":"field VideoID is a required field"}`,
		},
		{
			name:         "expired subscription",
			session:      models.Session{User: models.SessionUser{ID: "u-1"}, Subscription: expired},
			body:         `{"video_id":"intro"}`,
			mockSetup:    func(_ *ServiceMock) {},
			wantCode:     http.StatusForbidden,
			wantResponse: `{"status":"Error","error":"active subscription required"}`,
		},
		{
			name:    "store down",
			session: models.Session{User: models.SessionUser{ID: "u-1"}, Subscription: active},
			body:    `{"video_id":"intro"}`,
			mockSetup: func(m *ServiceMock) {
				m.On("MarkCompleted", mock.Anything, "u-1", "intro").Return(false, errors.New("redis down")).Once()
			},
			wantCode:     http.StatusInternalServerError,
			wantResponse: `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.mockSetup(svc)
			h := New(logger, svc)
			h.now = func() time.Time { return now }

			req := httptest.NewRequest(http.MethodPost, "/progress/videos", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(middlewarectx.WithSession(req.Context(), "tok", tt.session))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantResponse, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
