package notification

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/lib/rabbitmq"
)

// QueueTransport передаёт письмо воркеру рассылки через RabbitMQ.
// Доставкой считается публикация в обменник.
type QueueTransport struct {
	ch rabbitmq.Publisher
}

// NewQueueTransport создаёт транспорт поверх канала RabbitMQ.
func NewQueueTransport(ch rabbitmq.Publisher) *QueueTransport {
	return &QueueTransport{ch: ch}
}

func (t *QueueTransport) Name() string { return "queue" }

func (t *QueueTransport) Deliver(ctx context.Context, msg Message) error {
	const op = "notification.QueueTransport.Deliver"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := rabbitmq.PublishMessage(t.ch, rabbitmq.Exchange, rabbitmq.EmailRoutingKey, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
