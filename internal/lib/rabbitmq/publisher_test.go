package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublishMessage_Unit(t *testing.T) {
	t.Run("persistent json", func(t *testing.T) {
		pub := new(PublisherMock)
		pub.On("Publish", Exchange, EmailRoutingKey, false, false, mock.MatchedBy(func(p amqp.Publishing) bool {
			return p.ContentType == "application/json" &&
				p.DeliveryMode == amqp.Persistent &&
				string(p.Body) == `{"ok":true}`
		})).Return(nil)

		err := PublishMessage(pub, Exchange, EmailRoutingKey, map[string]bool{"ok": true})
		require.NoError(t, err)
		pub.AssertExpectations(t)
	})

	t.Run("publish error", func(t *testing.T) {
		pub := new(PublisherMock)
		pub.On("Publish", mock.Anything, mock.Anything, false, false, mock.Anything).Return(errors.New("channel closed"))

		err := PublishMessage(pub, Exchange, EmailRoutingKey, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
	})

	t.Run("marshal error", func(t *testing.T) {
		pub := new(PublisherMock)
		err := PublishMessage(pub, Exchange, EmailRoutingKey, struct {
			Ch chan int `json:"ch"`
		}{Ch: make(chan int)})
		require.Error(t, err)
		pub.AssertNotCalled(t, "Publish")
	})
}

func TestPublishMessage_ToExchangeWithRoutingKey(t *testing.T) {
	ctx := context.Background()
	amqpURI := amqpURIForTest(ctx, t)

	conn, err := Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	ch, err := SetupChannel(conn, GetNotificationQueues())
	require.NoError(t, err)
	defer func() {
		if err := ch.Close(); err != nil {
			t.Errorf("failed to close channel: %v", err)
		}
	}()

	msg := map[string]any{"to": "admin@example.com"}
	require.NoError(t, PublishMessage(ch, Exchange, EmailRoutingKey, msg))

	deliveries, err := ch.Consume(EmailQueue, "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got map[string]any
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, msg["to"], got["to"])
		assert.Equal(t, "application/json", d.ContentType)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message via exchange")
	}
}
