// Package paymentprovider HTTP-клиент платёжного шлюза Razorpay и проверка
// подписей его ответов.
package paymentprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/config"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// Client клиент Razorpay Orders API.
type Client struct {
	keyID      string
	keySecret  string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт клиент Razorpay.
func NewClient(cfg config.Razorpay) *Client {
	timeout := cfg.GatewayTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// KeyID публичный ключ, который передаётся в виджет оплаты.
func (c *Client) KeyID() string {
	return c.keyID
}

// Configured сообщает, заданы ли ключи для серверных вызовов.
func (c *Client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// CreateOrder создаёт заказ, к которому виджет привяжет платёж.
// Сетевые ошибки и ответы 5xx оборачивают models.ErrGatewayUnavailable.
func (c *Client) CreateOrder(ctx context.Context, in OrderRequest) (*Order, error) {
	const op = "paymentprovider.CreateOrder"
	req, err := c.newRequest(ctx, http.MethodPost, "/orders", in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		apiErr := decodeError(resp)
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%s: %w: %w", op, models.ErrGatewayUnavailable, apiErr)
		}
		return nil, fmt.Errorf("%s: %w", op, apiErr)
	}

	var order Order
	if err = json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &order, nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		apiErr.Description = resp.Status
		return apiErr
	}
	var env errorEnvelope
	if json.Unmarshal(raw, &env) == nil && env.Error.Code != "" {
		env.Error.StatusCode = resp.StatusCode
		return &env.Error
	}
	apiErr.Description = resp.Status
	return apiErr
}
