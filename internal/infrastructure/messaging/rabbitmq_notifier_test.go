package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestRabbitMQNotifier_Publish(t *testing.T) {
	t.Run("wraps payload in envelope", func(t *testing.T) {
		ch := new(MockChannel)
		n := &RabbitMQNotifier{channel: ch, exchange: "billing.exchange"}

		var sent amqp.Publishing
		ch.On("Publish", "billing.exchange", "billing.entries.platform_held", false, false, mock.AnythingOfType("amqp.Publishing")).
			Return(nil).
			Run(func(args mock.Arguments) { sent = args.Get(4).(amqp.Publishing) })

		err := n.Publish(context.Background(), "billing.entries.platform_held", map[string]any{"order_id": "o-1"})
		require.NoError(t, err)
		ch.AssertExpectations(t)

		assert.Equal(t, "application/json", sent.ContentType)
		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)

		var msg Message
		require.NoError(t, json.Unmarshal(sent.Body, &msg))
		assert.Equal(t, "billing.entries.platform_held", msg.Pattern)
		assert.Equal(t, sent.MessageId, msg.ID)
		assert.Equal(t, "o-1", msg.Data.(map[string]any)["order_id"])
	})

	t.Run("broker error", func(t *testing.T) {
		ch := new(MockChannel)
		n := &RabbitMQNotifier{channel: ch, exchange: "billing.exchange"}
		ch.On("Publish", mock.Anything, mock.Anything, false, false, mock.Anything).Return(errors.New("channel closed"))

		err := n.Publish(context.Background(), "billing.alert", map[string]any{})
		assert.ErrorContains(t, err, "channel closed")
	})

	t.Run("cancelled context skips the broker", func(t *testing.T) {
		ch := new(MockChannel)
		n := &RabbitMQNotifier{channel: ch, exchange: "billing.exchange"}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, n.Publish(ctx, "billing.alert", nil), context.Canceled)
		ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		ch := new(MockChannel)
		n := &RabbitMQNotifier{channel: ch, exchange: "billing.exchange"}
		assert.Error(t, n.Publish(context.Background(), "billing.alert", make(chan int)))
	})
}

func TestRabbitMQNotifier_Close(t *testing.T) {
	ch := new(MockChannel)
	ch.On("Close").Return(nil)
	n := &RabbitMQNotifier{channel: ch}
	n.Close()
	ch.AssertExpectations(t)
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, LogNotifier{}.Publish(context.Background(), "billing.alert", map[string]string{"a": "b"}))
	assert.Error(t, LogNotifier{}.Publish(context.Background(), "billing.alert", make(chan int)))
}
