// Package client клиент gRPC-сервиса авторизации. Используется HTTP-сервисом,
// когда сессии проверяет отдельный сервис auth.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/magabrotheeeer/course-portal/internal/grpc/authpb"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// AuthClient обёртка над соединением с сервисом авторизации.
type AuthClient struct {
	conn   *grpc.ClientConn
	client authpb.AuthServiceClient
}

// NewAuthClient создаёт клиент. Соединение устанавливается лениво при
// первом вызове.
func NewAuthClient(addr string, opts ...grpc.DialOption) (*AuthClient, error) {
	const op = "client.NewAuthClient"
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &AuthClient{conn: conn, client: authpb.NewAuthServiceClient(conn)}, nil
}

// Close закрывает соединение.
func (a *AuthClient) Close() error {
	return a.conn.Close()
}

// Register регистрирует пользователя и возвращает его идентификатор.
func (a *AuthClient) Register(ctx context.Context, name, email, phone, password string) (string, error) {
	resp, err := a.client.Register(ctx, &authpb.RegisterRequest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	})
	if err != nil {
		return "", fromStatus("client.Register", err)
	}
	return resp.GetUserId(), nil
}

// Login выполняет вход.
func (a *AuthClient) Login(ctx context.Context, email, password, userAgent string) (*authpb.LoginResponse, error) {
	resp, err := a.client.Login(ctx, &authpb.LoginRequest{
		Email:     email,
		Password:  password,
		UserAgent: userAgent,
	})
	if err != nil {
		return nil, fromStatus("client.Login", err)
	}
	return resp, nil
}

// Session проверяет токен в сервисе авторизации и восстанавливает сессию.
func (a *AuthClient) Session(ctx context.Context, token string) (models.Session, error) {
	resp, err := a.client.ValidateSession(ctx, &authpb.ValidateSessionRequest{Token: token})
	if err != nil {
		return models.Session{}, fromStatus("client.Session", err)
	}
	if !resp.Valid || resp.Session == nil {
		return models.Session{}, fmt.Errorf("client.Session: %w", models.ErrUnauthenticated)
	}
	info := resp.GetSession()
	user := info.GetUser()
	return models.Session{
		ID: info.GetSessionId(),
		User: models.SessionUser{
			ID:    user.GetId(),
			Name:  user.GetName(),
			Email: user.GetEmail(),
			Phone: user.GetPhone(),
		},
		Subscription: subscriptionModel(info.GetSubscription()),
		Admin:        info.GetAdmin(),
		LoginTime:    asTime(info.GetLoginTime()),
		Degraded:     info.GetDegraded(),
	}, nil
}

func subscriptionModel(sub *authpb.Subscription) *models.Subscription {
	if sub == nil {
		return nil
	}
	return &models.Subscription{
		ID:            sub.GetId(),
		UserID:        sub.GetUserId(),
		Plan:          sub.GetPlan(),
		Amount:        sub.GetAmount(),
		StartDate:     asTime(sub.GetStartDate()),
		ExpiryDate:    asTime(sub.GetExpiryDate()),
		Status:        sub.GetStatus(),
		TransactionID: sub.GetTransactionId(),
		PaymentMethod: sub.GetPaymentMethod(),
		CardLast4:     sub.GetCardLast4(),
		CreatedAt:     asTime(sub.GetCreatedAt()),
	}
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromStatus(op string, err error) error {
	switch status.Code(err) {
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", op, models.ErrDuplicateEmail)
	case codes.Unauthenticated:
		if status.Convert(err).Message() == "invalid email or password" {
			return fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return fmt.Errorf("%s: %w", op, models.ErrUnauthenticated)
	case codes.Unavailable:
		return fmt.Errorf("%s: %w: %w", op, models.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
