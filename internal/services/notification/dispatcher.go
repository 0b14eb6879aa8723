package notification

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/lib/metrics"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// LocalLog локальный журнал уведомлений.
type LocalLog interface {
	AppendNotification(ctx context.Context, n models.StoredNotification) error
	ListNotifications(ctx context.Context) ([]models.StoredNotification, error)
}

// RemoteLog таблица email_notifications.
type RemoteLog interface {
	LogEmailNotification(ctx context.Context, entry models.EmailNotificationLog) error
}

// Options настройки диспетчера.
type Options struct {
	AdminEmail string
	Timeout    time.Duration
}

// Dispatcher отправляет уведомления и ведёт журналы.
// Ошибки доставки и журналирования не выходят за пределы диспетчера.
type Dispatcher struct {
	transport Transport
	local     LocalLog
	remote    RemoteLog
	opts      Options
	log       *slog.Logger
	now       func() time.Time
}

// NewDispatcher создаёт диспетчер. transport может быть nil: тогда письма
// не отправляются, но уведомления попадают в локальный журнал.
func NewDispatcher(transport Transport, local LocalLog, remote RemoteLog, opts Options, log *slog.Logger) *Dispatcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Dispatcher{
		transport: transport,
		local:     local,
		remote:    remote,
		opts:      opts,
		log:       log,
		now:       time.Now,
	}
}

// Send фильтрует поля уведомления, сохраняет его в локальный журнал и
// передаёт транспорту. Возвращает true, только если письмо принято
// провайдером.
func (d *Dispatcher) Send(ctx context.Context, n Notification) bool {
	const op = "notification.Send"
	log := d.log.With(sl.Op(op), slog.String("kind", string(n.Kind())))

	params := Sanitize(n)

	if d.local != nil {
		entry := models.StoredNotification{
			Type:      string(n.Kind()),
			Data:      params,
			Timestamp: d.now().UTC(),
		}
		if err := d.local.AppendNotification(ctx, entry); err != nil {
			log.Warn("failed to store notification locally", sl.Err(err))
		}
	}

	if d.transport == nil {
		log.Info("email transport not configured, notification stored locally")
		metrics.Notifications.WithLabelValues(string(n.Kind()), metrics.ResultSkipped).Inc()
		return false
	}

	to, toName := d.recipient(n)
	if to == "" {
		log.Warn("notification has no recipient")
		metrics.Notifications.WithLabelValues(string(n.Kind()), metrics.ResultSkipped).Inc()
		return false
	}

	msg := Message{
		Kind:    n.Kind(),
		To:      to,
		ToName:  toName,
		Subject: Subject(n.Kind()),
		Params:  params,
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()
	if err := d.transport.Deliver(sendCtx, msg); err != nil {
		log.Error("failed to deliver notification",
			slog.String("transport", d.transport.Name()), sl.Err(err))
		metrics.Notifications.WithLabelValues(string(n.Kind()), metrics.ResultError).Inc()
		return false
	}

	log.Debug("notification delivered", slog.String("transport", d.transport.Name()))
	metrics.Notifications.WithLabelValues(string(n.Kind()), metrics.ResultOK).Inc()
	return true
}

func (d *Dispatcher) recipient(n Notification) (string, string) {
	name, email := n.User()
	if n.Audience() == AudienceUser {
		return email, name
	}
	return d.opts.AdminEmail, "Admin"
}

// LogRemote записывает строку email_notifications. Ошибка только логируется.
func (d *Dispatcher) LogRemote(ctx context.Context, n Notification, delivered bool) {
	const op = "notification.LogRemote"
	if d.remote == nil {
		return
	}
	name, email := n.User()
	entry := models.EmailNotificationLog{
		Type:      string(n.Kind()),
		UserEmail: email,
		UserName:  name,
		Delivered: delivered,
		Metadata:  n.Metadata(),
		CreatedAt: d.now().UTC(),
	}
	if err := d.remote.LogEmailNotification(ctx, entry); err != nil {
		d.log.Warn("failed to log notification remotely", sl.Op(op),
			slog.String("kind", string(n.Kind())), sl.Err(err))
	}
}

// Notify отправляет уведомление и записывает результат в удалённый журнал.
func (d *Dispatcher) Notify(ctx context.Context, n Notification) bool {
	delivered := d.Send(ctx, n)
	d.LogRemote(ctx, n, delivered)
	return delivered
}

// Export выгружает локальный журнал в CSV с колонками
// Type,Name,Email,Phone,Details,Timestamp.
func (d *Dispatcher) Export(ctx context.Context, w io.Writer) error {
	const op = "notification.Export"
	if d.local == nil {
		return fmt.Errorf("%s: local log is not configured", op)
	}
	entries, err := d.local.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"Type", "Name", "Email", "Phone", "Details", "Timestamp"}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, e := range entries {
		if err = cw.Write(csvRow(e)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func csvRow(e models.StoredNotification) []string {
	field := func(key string) string {
		if v, ok := e.Data[key]; ok && v != nil {
			return fmt.Sprint(v)
		}
		return ""
	}

	phone := field("phone")
	var details string
	switch Kind(e.Type) {
	case KindRegistration:
		details = "New Registration"
	case KindLogin:
		details = "User Login"
		if phone == "" {
			phone = "N/A"
		}
	case KindSubscription:
		details = fmt.Sprintf("Subscription: %s - ₹%s", field("plan"), field("amount"))
	case KindPaymentConfirmation:
		details = fmt.Sprintf("Payment: %s - %s", field("plan"), field("amount"))
	default:
		details = e.Type
	}

	return []string{
		e.Type,
		field("name"),
		field("email"),
		phone,
		details,
		e.Timestamp.UTC().Format(time.RFC3339),
	}
}
