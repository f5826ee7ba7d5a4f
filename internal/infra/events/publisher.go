// Package events publishes booking lifecycle events to RabbitMQ. Delivery is
// best effort; callers log failures and keep going.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string
}

// NewAMQPPublisher dials the broker and declares the booking queue. Durable so
// messages survive broker restarts.
func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare booking queue")
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			slog.Warn("failed to close amqp connection", "error", err.Error())
		}
	}

	return &AMQPPublisher{conn: conn, queue: cfg.Queue}, cleanup, nil
}

func (p *AMQPPublisher) PublishBookingEvent(ctx context.Context, event shared.BookingEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}
