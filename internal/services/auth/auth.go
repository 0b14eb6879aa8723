// Package auth регистрирует и аутентифицирует пользователей, выпускает
// токены и ведёт сессии.
//
// Основное хранилище PostgreSQL. Если оно недоступно, регистрация и вход
// выполняются по локальной копии в Redis, а сессия помечается как Degraded.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/course-portal/internal/lib/jwt"
	"github.com/magabrotheeeer/course-portal/internal/lib/metrics"
	"github.com/magabrotheeeer/course-portal/internal/lib/password"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/lib/useragent"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/notification"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// UserRepository основное хранилище пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	RecordLogin(ctx context.Context, entry models.LoginHistory) error
}

// LocalStore локальная копия пользователей и подписок.
type LocalStore interface {
	SaveUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	SaveSubscription(ctx context.Context, sub models.Subscription) error
	GetSubscription(ctx context.Context, userID string) (*models.Subscription, error)
}

// Subscriptions источник текущей подписки.
type Subscriptions interface {
	Current(ctx context.Context, userID string, now time.Time) (*models.Subscription, error)
}

// Sessions кеш сессий.
type Sessions interface {
	Save(ctx context.Context, sess models.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Notifier отправляет уведомления.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) bool
}

// Deps зависимости сервиса. Local может быть nil, тогда резервного
// режима нет.
type Deps struct {
	Users         UserRepository
	Local         LocalStore
	Subscriptions Subscriptions
	Sessions      Sessions
	Notifier      Notifier
	Tokens        jwt.Maker
}

// Service сервис аутентификации.
type Service struct {
	users    UserRepository
	local    LocalStore
	subs     Subscriptions
	sessions Sessions
	notifier Notifier
	tokens   jwt.Maker
	log      *slog.Logger
	now      func() time.Time
}

// NewService создаёт сервис аутентификации.
func NewService(deps Deps, log *slog.Logger) *Service {
	return &Service{
		users:    deps.Users,
		local:    deps.Local,
		subs:     deps.Subscriptions,
		sessions: deps.Sessions,
		notifier: deps.Notifier,
		tokens:   deps.Tokens,
		log:      log,
		now:      time.Now,
	}
}

// RegisterInput данные регистрации.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginInput данные входа.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
}

// LoginResult токен и созданная сессия.
type LoginResult struct {
	Token   string
	Session models.Session
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создаёт пользователя с ролью user. Пароль сохраняется только
// в виде bcrypt-хэша. Ошибка уведомления регистрацию не отменяет.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	const op = "auth.Register"
	log := s.log.With(sl.Op(op))

	hash, err := password.GetHash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        NormalizeEmail(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	switch {
	case err == nil:
		s.mirrorUser(ctx, created)
	case errors.Is(err, models.ErrDuplicateEmail):
		metrics.Registrations.WithLabelValues(metrics.ResultRejected).Inc()
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	case models.IsDegraded(err) && s.local != nil:
		log.Warn("remote store unavailable, registering locally", sl.Err(err))
		created, err = s.registerLocally(ctx, user, err)
		if err != nil {
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
		metrics.FallbackUses.WithLabelValues("register").Inc()
	default:
		metrics.Registrations.WithLabelValues(metrics.ResultError).Inc()
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.Registrations.WithLabelValues(metrics.ResultOK).Inc()
	log.Info("user registered", slog.String("user_id", created.ID))

	s.notify(ctx, notification.Registration{
		Name:         created.Name,
		Email:        created.Email,
		Phone:        created.Phone,
		RegisteredAt: created.CreatedAt,
	})
	return created, nil
}

func (s *Service) registerLocally(ctx context.Context, user models.User, remoteErr error) (models.User, error) {
	_, err := s.local.GetUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return models.User{}, models.ErrDuplicateEmail
	case !errors.Is(err, models.ErrNotFound):
		return models.User{}, errors.Join(remoteErr, err)
	}
	if err = s.local.SaveUser(ctx, user); err != nil {
		return models.User{}, errors.Join(remoteErr, err)
	}
	return user, nil
}

// Login проверяет пароль, записывает историю входа, подтягивает текущую
// подписку и создаёт сессию. При неверном email или пароле возвращает
// models.ErrInvalidCredentials и сессию не создаёт.
func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	const op = "auth.Login"
	log := s.log.With(sl.Op(op))
	now := s.now().UTC()
	email := NormalizeEmail(in.Email)

	user, degraded, err := s.findUser(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			metrics.Logins.WithLabelValues(metrics.ResultRejected).Inc()
		} else {
			metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		}
		return LoginResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = password.CompareHash(user.PasswordHash, in.Password); err != nil {
		if !password.IsMismatch(err) {
			log.Error("stored password hash is invalid", slog.String("user_id", user.ID), sl.Err(err))
		}
		metrics.Logins.WithLabelValues(metrics.ResultRejected).Inc()
		return LoginResult{}, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	var sub *models.Subscription
	if degraded {
		sub = s.localSubscription(ctx, user.ID, now)
	} else {
		s.recordLogin(ctx, user.ID, in.UserAgent, now)
		sub = s.currentSubscription(ctx, user, now)
	}

	sess := models.Session{
		ID: uuid.NewString(),
		User: models.SessionUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		Subscription: sub,
		Admin:        user.IsAdmin(),
		LoginTime:    now,
		Degraded:     degraded,
	}
	token, err := s.tokens.GenerateToken(user.ID, sess.ID, user.Role)
	if err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		return LoginResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = s.sessions.Save(ctx, sess, s.tokens.TTL()); err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		return LoginResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if degraded {
		metrics.Logins.WithLabelValues(metrics.ResultDegraded).Inc()
	} else {
		metrics.Logins.WithLabelValues(metrics.ResultOK).Inc()
	}
	log.Info("user logged in", slog.String("user_id", user.ID), slog.Bool("degraded", degraded))

	s.notify(ctx, notification.Login{
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Subscription: sub,
	})
	return LoginResult{Token: token, Session: sess}, nil
}

// findUser ищет пользователя в основном хранилище, а при его
// недоступности в локальной копии.
func (s *Service) findUser(ctx context.Context, email string) (models.User, bool, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return user, false, nil
	case errors.Is(err, models.ErrNotFound):
		return models.User{}, false, models.ErrInvalidCredentials
	case !models.IsDegraded(err) || s.local == nil:
		return models.User{}, false, err
	}

	s.log.Warn("remote store unavailable, using local copy", sl.Op("auth.findUser"), sl.Err(err))
	metrics.FallbackUses.WithLabelValues("login").Inc()
	user, localErr := s.local.GetUserByEmail(ctx, email)
	switch {
	case localErr == nil:
		return user, true, nil
	case errors.Is(localErr, models.ErrNotFound):
		return models.User{}, true, models.ErrInvalidCredentials
	default:
		return models.User{}, true, errors.Join(err, localErr)
	}
}

func (s *Service) recordLogin(ctx context.Context, userID, ua string, now time.Time) {
	entry := models.LoginHistory{
		UserID:     userID,
		UserAgent:  ua,
		DeviceType: useragent.DeviceType(ua),
		CreatedAt:  now,
	}
	if err := s.users.RecordLogin(ctx, entry); err != nil {
		s.log.Warn("failed to record login history", sl.Op("auth.recordLogin"), sl.Err(err))
	}
}

// currentSubscription читает подписку из основного хранилища и обновляет
// локальную копию. При ошибке используется локальная копия.
func (s *Service) currentSubscription(ctx context.Context, user models.User, now time.Time) *models.Subscription {
	const op = "auth.currentSubscription"
	sub, err := s.subs.Current(ctx, user.ID, now)
	if err != nil {
		s.log.Warn("failed to load current subscription", sl.Op(op), sl.Err(err))
		return s.localSubscription(ctx, user.ID, now)
	}
	s.mirrorUser(ctx, user)
	if sub != nil && s.local != nil {
		if err = s.local.SaveSubscription(ctx, *sub); err != nil {
			s.log.Warn("failed to mirror subscription locally", sl.Op(op), sl.Err(err))
		}
	}
	return sub
}

// localSubscription возвращает сохранённую подписку, если она ещё даёт доступ.
func (s *Service) localSubscription(ctx context.Context, userID string, now time.Time) *models.Subscription {
	if s.local == nil {
		return nil
	}
	sub, err := s.local.GetSubscription(ctx, userID)
	if err != nil {
		s.log.Warn("failed to read local subscription", sl.Op("auth.localSubscription"), sl.Err(err))
		return nil
	}
	if !subscription.Derive(sub, now).HasAccess() {
		return nil
	}
	return sub
}

func (s *Service) mirrorUser(ctx context.Context, user models.User) {
	if s.local == nil {
		return
	}
	if err := s.local.SaveUser(ctx, user); err != nil {
		s.log.Warn("failed to mirror user locally", sl.Op("auth.mirrorUser"), sl.Err(err))
	}
}

func (s *Service) notify(ctx context.Context, n notification.Notification) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, n)
}

// Session проверяет токен и возвращает сессию из кеша.
func (s *Service) Session(ctx context.Context, token string) (models.Session, error) {
	const op = "auth.Session"
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s: %w: %w", op, models.ErrUnauthenticated, err)
	}
	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if sess.User.ID != claims.UserID {
		return models.Session{}, fmt.Errorf("%s: %w", op, models.ErrUnauthenticated)
	}
	return sess, nil
}

// Logout удаляет сессию, на которую ссылается токен.
func (s *Service) Logout(ctx context.Context, token string) error {
	const op = "auth.Logout"
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, models.ErrUnauthenticated, err)
	}
	if err = s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
