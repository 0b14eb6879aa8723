package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// LogEmailNotification добавляет запись в журнал писем email_notifications.
func (s *Storage) LogEmailNotification(ctx context.Context, entry models.EmailNotificationLog) error {
	const op = "storage.LogEmailNotification"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO email_notifications (notification_type, user_email, user_name,
			      delivered, metadata)
			  VALUES ($1, $2, $3, $4, $5::jsonb)`
	if _, err = s.DB.ExecContext(ctx, query,
		entry.Type, entry.UserEmail, entry.UserName, entry.Delivered, string(raw),
	); err != nil {
		return classify(op, err)
	}
	return nil
}
