package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mrz1836/postmark"
)

// PostmarkTransport отправляет письма через Postmark. Если для вида
// уведомления задан алиас шаблона, используется шаблонное письмо.
type PostmarkTransport struct {
	client    *postmark.Client
	from      string
	templates map[string]string
}

// NewPostmarkTransport создаёт транспорт Postmark.
func NewPostmarkTransport(serverToken, accountToken, from string, templates map[string]string, httpClient *http.Client) (*PostmarkTransport, error) {
	const op = "notification.NewPostmarkTransport"
	if IsPlaceholder(serverToken) || from == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}
	client := postmark.NewClient(serverToken, accountToken)
	if httpClient != nil {
		client.HTTPClient = httpClient
	}
	return &PostmarkTransport{client: client, from: from, templates: templates}, nil
}

func (t *PostmarkTransport) Name() string { return "postmark" }

func (t *PostmarkTransport) Deliver(ctx context.Context, msg Message) error {
	const op = "notification.PostmarkTransport.Deliver"

	var (
		resp postmark.EmailResponse
		err  error
	)
	if alias := t.templates[string(msg.Kind)]; alias != "" {
		model := make(map[string]interface{}, len(msg.Params)+1)
		for k, v := range msg.Params {
			model[k] = v
		}
		model["subject"] = msg.Subject
		resp, err = t.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
			TemplateAlias: alias,
			TemplateModel: model,
			From:          t.from,
			To:            msg.To,
			Tag:           string(msg.Kind),
		})
	} else {
		resp, err = t.client.SendEmail(ctx, postmark.Email{
			From:     t.from,
			To:       msg.To,
			Subject:  msg.Subject,
			Tag:      string(msg.Kind),
			TextBody: RenderText(msg),
		})
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%s: postmark error: %d - %s", op, resp.ErrorCode, resp.Message)
	}
	return nil
}
