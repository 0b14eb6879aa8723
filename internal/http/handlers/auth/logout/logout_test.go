package logout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLogoutHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		mockErr  error
		wantCode int
	}{
		{name: "no session in context", wantCode: http.StatusUnauthorized},
		{name: "logged out", token: "tok", wantCode: http.StatusOK},
		{name: "cache error", token: "tok", mockErr: errors.New("redis down"), wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			if tt.token != "" {
				svc.On("Logout", mock.Anything, tt.token).Return(tt.mockErr).Once()
				req = req.WithContext(middlewarectx.WithSession(req.Context(), tt.token, models.Session{ID: "s-1"}))
			}
			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
