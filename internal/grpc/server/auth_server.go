// Package server реализует gRPC-сервер сервиса авторизации.
//
// AuthServer обрабатывает регистрацию, вход и проверку сессии, логирует
// операции и делегирует бизнес-логику сервису auth.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/magabrotheeeer/course-portal/internal/grpc/authpb"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/auth"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// AuthService бизнес-логика авторизации.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (models.User, error)
	Login(ctx context.Context, in auth.LoginInput) (auth.LoginResult, error)
	Session(ctx context.Context, token string) (models.Session, error)
}

// AuthServer реализует authpb.AuthServiceServer.
type AuthServer struct {
	authpb.UnimplementedAuthServiceServer

	authService AuthService
	log         *slog.Logger
	now         func() time.Time
}

var _ authpb.AuthServiceServer = (*AuthServer)(nil)

// NewAuthServer создает AuthServer.
func NewAuthServer(authService AuthService, logger *slog.Logger) *AuthServer {
	return &AuthServer{
		authService: authService,
		log:         logger,
		now:         time.Now,
	}
}

// Register создает нового пользователя.
func (s *AuthServer) Register(ctx context.Context, req *authpb.RegisterRequest) (*authpb.RegisterResponse, error) {
	const op = "grpc.Register"
	log := s.log.With(sl.Op(op), slog.String("email", req.Email))

	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "name, email and password are required")
	}

	user, err := s.authService.Register(ctx, auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		log.Error("register failed", sl.Err(err))
		return nil, toStatus(err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return &authpb.RegisterResponse{
		Success: true,
		Message: "user created successfully",
		UserId:  user.ID,
	}, nil
}

// Login проверяет пароль и открывает сессию.
func (s *AuthServer) Login(ctx context.Context, req *authpb.LoginRequest) (*authpb.LoginResponse, error) {
	const op = "grpc.Login"
	log := s.log.With(sl.Op(op), slog.String("email", req.Email))

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	res, err := s.authService.Login(ctx, auth.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		log.Error("login failed", sl.Err(err))
		return nil, toStatus(err)
	}

	return &authpb.LoginResponse{
		Token:   res.Token,
		Session: s.sessionInfo(res.Session),
	}, nil
}

// ValidateSession проверяет токен и возвращает сессию.
func (s *AuthServer) ValidateSession(ctx context.Context, req *authpb.ValidateSessionRequest) (*authpb.ValidateSessionResponse, error) {
	const op = "grpc.ValidateSession"

	if req.Token == "" {
		return nil, status.Error(codes.Unauthenticated, "token is required")
	}
	sess, err := s.authService.Session(ctx, req.Token)
	if err != nil {
		s.log.Debug("invalid session", sl.Op(op), sl.Err(err))
		return nil, toStatus(err)
	}

	return &authpb.ValidateSessionResponse{
		Valid:   true,
		Session: s.sessionInfo(sess),
	}, nil
}

func (s *AuthServer) sessionInfo(sess models.Session) *authpb.SessionInfo {
	st := subscription.Resolve(sess.Subscription, sess.Admin, s.now())
	return &authpb.SessionInfo{
		SessionId: sess.ID,
		User: &authpb.SessionUser{
			Id:    sess.User.ID,
			Name:  sess.User.Name,
			Email: sess.User.Email,
			Phone: sess.User.Phone,
		},
		Subscription:      subscriptionMessage(sess.Subscription),
		Admin:             sess.Admin,
		Degraded:          sess.Degraded,
		LoginTime:         timestamp(sess.LoginTime),
		SubscriptionState: string(st.State),
		DaysRemaining:     int32(st.DaysRemaining),
		HasAccess:         st.HasAccess(),
	}
}

func subscriptionMessage(sub *models.Subscription) *authpb.Subscription {
	if sub == nil {
		return nil
	}
	return &authpb.Subscription{
		Id:            sub.ID,
		UserId:        sub.UserID,
		Plan:          sub.Plan,
		Amount:        sub.Amount,
		StartDate:     timestamp(sub.StartDate),
		ExpiryDate:    timestamp(sub.ExpiryDate),
		Status:        sub.Status,
		TransactionId: sub.TransactionID,
		PaymentMethod: sub.PaymentMethod,
		CardLast4:     sub.CardLast4,
		CreatedAt:     timestamp(sub.CreatedAt),
	}
}

// timestamp нулевое время передаётся как отсутствующее поле.
func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, models.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, models.ErrUnauthenticated), errors.Is(err, models.ErrNotFound):
		return status.Error(codes.Unauthenticated, "session is missing or expired")
	case errors.Is(err, models.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "service temporarily unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
