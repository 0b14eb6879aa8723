package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// CreateUser сохраняет нового пользователя.
// Если email уже занят, возвращает models.ErrDuplicateEmail.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO users (id, name, email, phone, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING created_at;`
	err := s.DB.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.Role,
	).Scan(&user.CreatedAt)
	if isUniqueViolation(err) {
		return models.User{}, fmt.Errorf("%s: %w", op, models.ErrDuplicateEmail)
	}
	if err != nil {
		return models.User{}, classify(op, err)
	}
	return user, nil
}

// GetUserByEmail возвращает пользователя по email или models.ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, email, phone, password_hash, role, created_at
			  FROM users
			  WHERE email = $1`
	var u models.User
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt,
	); err != nil {
		return models.User{}, classify(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *Storage) GetUser(ctx context.Context, userID string) (models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, email, phone, password_hash, role, created_at
			  FROM users
			  WHERE id = $1`
	var u models.User
	if err := s.DB.QueryRowContext(ctx, query, userID).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt,
	); err != nil {
		return models.User{}, classify(op, err)
	}
	return u, nil
}
