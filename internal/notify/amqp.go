package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "notifications"
	ExchangeKind = "topic"
	RoutingKey   = "attendee.registered"
)

// Message is the JSON body published for each confirmation.
type Message struct {
	MessageID      string    `json:"message_id"`
	RecipientName  string    `json:"recipient_name"`
	RecipientEmail string    `json:"recipient_email"`
	EventName      string    `json:"event_name"`
	TicketType     string    `json:"ticket_type"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

// NewMessage builds the published form of c with a fresh message ID.
func NewMessage(c Confirmation) Message {
	return Message{
		MessageID:      uuid.NewString(),
		RecipientName:  c.RecipientName,
		RecipientEmail: c.RecipientEmail,
		EventName:      c.EventName,
		TicketType:     c.TicketType,
		Subject:        c.Subject(),
		Body:           RenderBody(c),
		SentAt:         c.SentAt.UTC(),
	}
}

// channel is the part of *amqp.Channel the notifier uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes confirmations to a RabbitMQ topic exchange for a
// mail worker to deliver.
type AMQPNotifier struct {
	conn    *amqp.Connection
	channel channel
	logger  *slog.Logger
}

func NewAMQPNotifier(url string, logger *slog.Logger) (*AMQPNotifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &AMQPNotifier{conn: conn, channel: ch, logger: logger}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, c Confirmation) error {
	msg := NewMessage(c)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal confirmation: %w", err)
	}

	err = n.channel.PublishWithContext(ctx, ExchangeName, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageID,
		Timestamp:    msg.SentAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish confirmation: %w", err)
	}

	n.logger.DebugContext(ctx, "confirmation published",
		"exchange", ExchangeName,
		"routing_key", RoutingKey,
		"message_id", msg.MessageID,
	)
	return nil
}

func (n *AMQPNotifier) Close() {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}
