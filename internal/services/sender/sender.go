// Package sender читает письма из очереди и доставляет их через SMTP.
package sender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/services/notification"
)

// ErrMalformedMessage сообщение из очереди нельзя доставить.
var ErrMalformedMessage = errors.New("malformed notification message")

// Service доставляет письма из очереди.
type Service struct {
	transport notification.Transport
	timeout   time.Duration
	log       *slog.Logger
}

// NewService создаёт Service. timeout ограничивает доставку одного письма.
func NewService(transport notification.Transport, timeout time.Duration, log *slog.Logger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{transport: transport, timeout: timeout, log: log}
}

// Decode разбирает тело сообщения и проверяет адрес получателя.
func Decode(body []byte) (notification.Message, error) {
	var msg notification.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return notification.Message{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return notification.Message{}, fmt.Errorf("%w: bad recipient: %w", ErrMalformedMessage, err)
	}
	if msg.Subject == "" {
		msg.Subject = notification.Subject(msg.Kind)
	}
	return msg, nil
}

// Deliver доставляет одно сообщение. Битое сообщение отбрасывается без
// ошибки. Ошибка транспорта возвращается, и сообщение уходит на повтор.
func (s *Service) Deliver(ctx context.Context, body []byte) error {
	const op = "sender.Deliver"
	log := s.log.With(sl.Op(op))

	msg, err := Decode(body)
	if err != nil {
		log.Error("dropping message", sl.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err = s.transport.Deliver(ctx, msg); err != nil {
		log.Error("failed to deliver email",
			slog.String("kind", string(msg.Kind)), slog.String("transport", s.transport.Name()), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Handler возвращает обработчик для rabbitmq.ConsumerMessage.
func (s *Service) Handler(ctx context.Context) func([]byte) error {
	return func(body []byte) error {
		return s.Deliver(ctx, body)
	}
}
