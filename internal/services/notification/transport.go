package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/magabrotheeeer/course-portal/internal/config"
	"github.com/magabrotheeeer/course-portal/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/course-portal/internal/lib/smtp"
)

// ErrNotConfigured ключи провайдера не заданы или остались заглушкой.
var ErrNotConfigured = errors.New("email provider is not configured")

// placeholderKeys значения из шаблонов конфигурации, которые означают
// отсутствие настоящего ключа.
var placeholderKeys = map[string]struct{}{
	"YOUR_PUBLIC_KEY":   {},
	"YOUR_PRIVATE_KEY":  {},
	"YOUR_SERVER_TOKEN": {},
	"YOUR_API_KEY":      {},
}

// IsPlaceholder сообщает, что ключ пустой или является заглушкой.
func IsPlaceholder(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}
	_, ok := placeholderKeys[key]
	return ok
}

// Message письмо, готовое к доставке. Params уже отфильтрованы.
type Message struct {
	Kind    Kind           `json:"kind"`
	To      string         `json:"to"`
	ToName  string         `json:"to_name"`
	Subject string         `json:"subject"`
	Params  map[string]any `json:"params"`
}

// Transport доставляет письмо через конкретного провайдера.
type Transport interface {
	Name() string
	Deliver(ctx context.Context, msg Message) error
}

var subjects = map[Kind]string{
	KindRegistration:        "New User Registration - Manoj Technologies",
	KindLogin:               "User Login Activity - Manoj Technologies",
	KindSubscription:        "New Subscription Purchase - Manoj Technologies",
	KindPaymentConfirmation: "Payment Successful - Manoj Technologies",
}

// Subject возвращает тему письма для вида уведомления.
func Subject(kind Kind) string {
	if s, ok := subjects[kind]; ok {
		return s
	}
	return "Notification - Manoj Technologies"
}

var headings = map[Kind]string{
	KindRegistration:        "New User Registration",
	KindLogin:               "User Login Activity",
	KindSubscription:        "New Subscription Purchase",
	KindPaymentConfirmation: "Payment Successful",
}

// RenderText собирает текстовое тело письма для провайдеров без шаблонов.
func RenderText(msg Message) string {
	var b strings.Builder
	heading := headings[msg.Kind]
	if heading == "" {
		heading = msg.Subject
	}
	b.WriteString(heading)
	b.WriteString("\n\n")

	order := AllowedFields(msg.Kind)
	if len(order) == 0 {
		for k := range msg.Params {
			order = append(order, k)
		}
		sort.Strings(order)
	}
	for _, key := range order {
		v, ok := msg.Params[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %v\n", key, v)
	}
	return b.String()
}

// FromConfig выбирает транспорт по cfg.Provider: postmark, mailjet, smtp
// или queue. Для queue нужен pub. Пустой провайдер даёт ErrNotConfigured.
func FromConfig(cfg config.Email, smtpCfg config.SMTP, pub rabbitmq.Publisher, log *slog.Logger) (Transport, error) {
	const op = "notification.FromConfig"
	switch cfg.Provider {
	case "postmark":
		t, err := NewPostmarkTransport(cfg.ServerToken, cfg.AccountToken, cfg.Sender, cfg.Templates,
			&http.Client{Timeout: cfg.EmailTimeout})
		if err != nil {
			return nil, err
		}
		return t, nil
	case "mailjet":
		t, err := NewMailjetTransport(cfg.PublicKey, cfg.PrivateKey, cfg.Sender)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "smtp":
		if smtpCfg.SMTPHost == "" {
			return nil, fmt.Errorf("%s: smtp host: %w", op, ErrNotConfigured)
		}
		return NewSMTPTransport(smtp.NewTransport(smtpCfg, log), log), nil
	case "queue":
		if pub == nil {
			return nil, fmt.Errorf("%s: queue channel: %w", op, ErrNotConfigured)
		}
		return NewQueueTransport(pub), nil
	case "":
		return nil, fmt.Errorf("%s: %w", op, ErrNotConfigured)
	default:
		return nil, fmt.Errorf("%s: unknown provider %q", op, cfg.Provider)
	}
}
