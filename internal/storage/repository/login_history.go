package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// RecordLogin сохраняет запись об успешном входе.
func (s *Storage) RecordLogin(ctx context.Context, entry models.LoginHistory) error {
	const op = "storage.RecordLogin"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO login_history (user_id, user_agent, device_type)
			  VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, entry.UserID, entry.UserAgent, entry.DeviceType); err != nil {
		return classify(op, err)
	}
	return nil
}
