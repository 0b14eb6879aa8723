package rabbitmq

// Exchange обменник уведомлений.
const Exchange = "notifications"

// Очередь писем для воркера рассылки.
const (
	EmailQueue      = "notification.email"
	EmailRoutingKey = "email"
)

// QueueConfig очередь и её ключ маршрутизации в обменнике Exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые объявляют и
// публикатор, и воркер.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: EmailQueue, RoutingKey: EmailRoutingKey},
	}
}
