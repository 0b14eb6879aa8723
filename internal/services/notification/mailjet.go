package notification

import (
	"context"
	"fmt"

	"github.com/mailjet/mailjet-apiv3-go"
)

type mailjetSendFunc func(msgs *mailjet.MessagesV31) (*mailjet.ResultsV31, error)

// MailjetTransport отправляет письма через Mailjet Send API v3.1.
type MailjetTransport struct {
	send mailjetSendFunc
	from string
}

// NewMailjetTransport создаёт транспорт Mailjet.
func NewMailjetTransport(publicKey, privateKey, from string) (*MailjetTransport, error) {
	const op = "notification.NewMailjetTransport"
	if IsPlaceholder(publicKey) || IsPlaceholder(privateKey) || from == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}
	clt := mailjet.NewMailjetClient(publicKey, privateKey)
	return &MailjetTransport{
		send: func(msgs *mailjet.MessagesV31) (*mailjet.ResultsV31, error) {
			return clt.SendMailV31(msgs)
		},
		from: from,
	}, nil
}

func (t *MailjetTransport) Name() string { return "mailjet" }

// Deliver отправляет письмо. Клиент Mailjet не принимает контекст,
// поэтому отменённый контекст проверяется до вызова.
func (t *MailjetTransport) Deliver(ctx context.Context, msg Message) error {
	const op = "notification.MailjetTransport.Deliver"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	info := []mailjet.InfoMessagesV31{{
		From:     &mailjet.RecipientV31{Email: t.from, Name: "Manoj Technologies"},
		To:       &mailjet.RecipientsV31{mailjet.RecipientV31{Email: msg.To, Name: msg.ToName}},
		Subject:  msg.Subject,
		TextPart: RenderText(msg),
	}}
	if _, err := t.send(&mailjet.MessagesV31{Info: info}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
