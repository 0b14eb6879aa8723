package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, in auth.RegisterInput) (models.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	valid := Request{Name: "Asha K", Email: "asha@example.com", Phone: "+919800000000", Password: "secret1"}
	input := auth.RegisterInput{Name: "Asha K", Email: "asha@example.com", Phone: "+919800000000", Password: "secret1"}

	tests := []struct {
		name         string
		body         any
		setupMock    func(*ServiceMock)
		wantCode     int
		wantResponse string
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, input).Return(models.User{
					ID: "u-1", Name: "Asha K", Email: "asha@example.com", Phone: "+919800000000", PasswordHash: "$2a$10$x",
				}, nil).Once()
			},
			wantCode:     http.StatusCreated,
			wantResponse: `{"status":"OK","data":{"id":"u-1","name":"Asha K","email":"asha@example.com","phone":"+919800000000"}}`,
		},
		{
			name:         "invalid json",
			body:         "not a json",
			setupMock:    func(*ServiceMock) {},
			wantCode:     http.StatusBadRequest,
			wantResponse: `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:         "invalid email and short password",
			body:         Request{Name: "Asha", Email: "asha", Phone: "+919800000000", Password: "123"},
			setupMock:    func(*ServiceMock) {},
			wantCode:     http.StatusUnprocessableEntity,
			wantResponse: `{"status":"Error","error":"field Email must be a valid email, field Password must be at least 6 characters"}`,
		},
		{
			name: "duplicate email",
			body: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, input).Return(models.User{}, models.ErrDuplicateEmail).Once()
			},
			wantCode:     http.StatusConflict,
			wantResponse: `{"status":"Error","error":"email already registered"}`,
		},
		{
			name: "store unavailable without fallback",
			body: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, input).
					Return(models.User{}, &models.DegradedError{Op: "repo", Reason: errors.New("refused")}).Once()
			},
			wantCode:     http.StatusServiceUnavailable,
			wantResponse: `{"status":"Error","error":"service temporarily unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			var body []byte
			if s, ok := tt.body.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantResponse, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
