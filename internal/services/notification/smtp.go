package notification

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
	"github.com/magabrotheeeer/course-portal/internal/lib/smtp"
)

// SMTPTransport отправляет письма напрямую через SMTP-сервер.
type SMTPTransport struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSMTPTransport создаёт SMTP-транспорт.
func NewSMTPTransport(transport smtp.TransportInterface, log *slog.Logger) *SMTPTransport {
	return &SMTPTransport{transport: transport, log: log}
}

func (t *SMTPTransport) Name() string { return "smtp" }

func (t *SMTPTransport) Deliver(ctx context.Context, msg Message) error {
	const op = "notification.SMTPTransport.Deliver"
	from := t.transport.GetSMTPUser()
	log := t.log.With(sl.Op(op))

	raw := strings.Join([]string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		RenderText(msg),
	}, "\r\n")

	client, err := t.transport.Connect(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		// после успешного Quit соединение уже закрыто
		_ = client.Close()
	}()

	if err = client.Mail(from); err != nil {
		log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Rcpt(msg.To); err != nil {
		log.Error("failed to set RCPT TO", slog.String("recipient", msg.To), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	wc, err := client.Data()
	if err != nil {
		log.Error("failed to get data writer", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err = wc.Write([]byte(raw)); err != nil {
		log.Error("failed to write email body", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = wc.Close(); err != nil {
		log.Error("failed to close data writer", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Quit(); err != nil {
		log.Error("failed to quit SMTP client", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("email sent", slog.String("kind", string(msg.Kind)))
	return nil
}
