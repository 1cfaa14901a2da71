package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"taskilo_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// Message is the envelope published for every billing notification.
type Message struct {
	ID         string    `json:"id"`
	Pattern    string    `json:"pattern"`
	Data       any       `json:"data"`
	OccurredAt time.Time `json:"occurred_at"`
}

type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQNotifier publishes billing notifications to a topic exchange.
type RabbitMQNotifier struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

var _ interfaces.INotifier = (*RabbitMQNotifier)(nil)

func NewRabbitMQNotifier(amqpURL, exchange string) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	log.Printf("[billing][rabbitmq] publisher ready exchange=%s", exchange)

	return &RabbitMQNotifier{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *RabbitMQNotifier) Publish(ctx context.Context, routingKey string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := Message{
		ID:         uuid.NewString(),
		Pattern:    routingKey,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	log.Printf("[billing][rabbitmq] published routing_key=%s exchange=%s id=%s", routingKey, p.exchange, msg.ID)
	return nil
}

func (p *RabbitMQNotifier) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// LogNotifier writes notifications to the log. Used when no broker is configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Publish(_ context.Context, routingKey string, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	log.Printf("[billing][notify] routing_key=%s data=%s", routingKey, body)
	return nil
}
