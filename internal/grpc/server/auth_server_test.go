package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/magabrotheeeer/course-portal/internal/grpc/authpb"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/auth"
)

// MockAuthService мок сервиса авторизации.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in auth.RegisterInput) (models.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, in auth.LoginInput) (auth.LoginResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(auth.LoginResult), args.Error(1)
}

func (m *MockAuthService) Session(ctx context.Context, token string) (models.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Session), args.Error(1)
}

var _ AuthService = (*MockAuthService)(nil)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthServer_Register(t *testing.T) {
	input := auth.RegisterInput{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Password: "secret1"}
	req := &authpb.RegisterRequest{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Password: "secret1"}

	tests := []struct {
		name         string
		request      *authpb.RegisterRequest
		mockSetup    func(*MockAuthService)
		expectedCode codes.Code
	}{
		{
			name:    "successful registration",
			request: req,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, input).Return(models.User{ID: "user-uuid-123"}, nil).Once()
			},
			expectedCode: codes.OK,
		},
		{
			name:    "duplicate email",
			request: req,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, input).
					Return(models.User{}, fmt.Errorf("auth.Register: %w", models.ErrDuplicateEmail)).Once()
			},
			expectedCode: codes.AlreadyExists,
		},
		{
			name:    "storage error",
			request: req,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, input).Return(models.User{}, assert.AnError).Once()
			},
			expectedCode: codes.Internal,
		},
		{
			name:         "missing password",
			request:      &authpb.RegisterRequest{Name: "Asha", Email: "asha@example.com"},
			mockSetup:    func(_ *MockAuthService) {},
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.mockSetup(svc)

			resp, err := NewAuthServer(svc, newNoopLogger()).Register(context.Background(), tt.request)

			if tt.expectedCode == codes.OK {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, "user-uuid-123", resp.GetUserId())
			} else {
				assert.Nil(t, resp)
				assert.Equal(t, tt.expectedCode, status.Code(err))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthServer_Login(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sess := models.Session{
		ID:   "sess-1",
		User: models.SessionUser{ID: "u-1", Name: "Asha", Email: "asha@example.com"},
		Subscription: &models.Subscription{
			ID: 3, UserID: "u-1", Plan: "monthly", Status: "active", ExpiryDate: now.AddDate(0, 0, 5),
		},
		LoginTime: now,
	}

	t.Run("successful login", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, auth.LoginInput{Email: "asha@example.com", Password: "secret1", UserAgent: "grpc-go"}).
			Return(auth.LoginResult{Token: "jwt-token", Session: sess}, nil).Once()

		srv := NewAuthServer(svc, newNoopLogger())
		srv.now = func() time.Time { return now }
		resp, err := srv.Login(context.Background(), &authpb.LoginRequest{
			Email: "asha@example.com", Password: "secret1", UserAgent: "grpc-go",
		})

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", resp.Token)
		require.NotNil(t, resp.Session)
		assert.Equal(t, "sess-1", resp.Session.GetSessionId())
		assert.Equal(t, "asha@example.com", resp.Session.GetUser().GetEmail())
		require.NotNil(t, resp.Session.GetSubscription())
		assert.Equal(t, int64(3), resp.Session.GetSubscription().GetId())
		assert.True(t, now.AddDate(0, 0, 5).Equal(resp.Session.GetSubscription().GetExpiryDate().AsTime()))
		assert.Nil(t, resp.Session.GetSubscription().GetStartDate())
		assert.True(t, now.Equal(resp.Session.GetLoginTime().AsTime()))
		assert.Equal(t, "expiring_soon", resp.Session.SubscriptionState)
		assert.Equal(t, int32(5), resp.Session.DaysRemaining)
		assert.True(t, resp.Session.HasAccess)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(auth.LoginResult{}, fmt.Errorf("auth.Login: %w", models.ErrInvalidCredentials)).Once()

		resp, err := NewAuthServer(svc, newNoopLogger()).Login(context.Background(), &authpb.LoginRequest{
			Email: "asha@example.com", Password: "wrong",
		})

		assert.Nil(t, resp)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Equal(t, "invalid email or password", status.Convert(err).Message())
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(auth.LoginResult{}, models.ErrStoreUnavailable).Once()

		_, err := NewAuthServer(svc, newNoopLogger()).Login(context.Background(), &authpb.LoginRequest{
			Email: "asha@example.com", Password: "secret1",
		})
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})

	t.Run("empty email", func(t *testing.T) {
		svc := new(MockAuthService)
		_, err := NewAuthServer(svc, newNoopLogger()).Login(context.Background(), &authpb.LoginRequest{Password: "x"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthServer_ValidateSession(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Session", mock.Anything, "good").
		Return(models.Session{ID: "s-1", User: models.SessionUser{ID: "u-1"}, Admin: true}, nil).Once()
	svc.On("Session", mock.Anything, "bad").
		Return(models.Session{}, fmt.Errorf("auth.Session: %w", models.ErrUnauthenticated)).Once()

	srv := NewAuthServer(svc, newNoopLogger())

	resp, err := srv.ValidateSession(context.Background(), &authpb.ValidateSessionRequest{Token: "good"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "admin_access", resp.Session.SubscriptionState)
	assert.True(t, resp.Session.HasAccess)
	assert.Nil(t, resp.Session.GetSubscription())
	assert.Nil(t, resp.Session.GetLoginTime())

	_, err = srv.ValidateSession(context.Background(), &authpb.ValidateSessionRequest{Token: "bad"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = srv.ValidateSession(context.Background(), &authpb.ValidateSessionRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	svc.AssertExpectations(t)
}
