// Package kafka mirrors order events to a Kafka topic so that systems other than
// the dashboards can follow order changes. It is optional and best-effort like
// the SSE stream: a failed write is logged and never reaches the request.
package kafka

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/adapters/wire"
	"pedidos/internal/core/domain/model/order"

	skafka "github.com/segmentio/kafka-go"
)

// EventHeader carries the event name on every message.
const EventHeader = "event"

// Writer defines the subset of segmentio kafka.Writer we need.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on top of a Kafka writer.
type Publisher struct {
	writer Writer
	logger *slog.Logger
}

// NewPublisher creates an asynchronous writer for topic on broker. Delivery
// errors are reported through the writer's completion callback.
func NewPublisher(broker, topic string, logger *slog.Logger) *Publisher {
	logger = logger.With("component", "kafka_publisher", "topic", topic)
	w := &skafka.Writer{
		Addr:         skafka.TCP(broker),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []skafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to deliver order events", "messages", len(messages), "error", err)
			}
		},
	}
	return &Publisher{writer: w, logger: logger}
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer, logger *slog.Logger) *Publisher {
	return &Publisher{writer: w, logger: logger.With("component", "kafka_publisher")}
}

// Publish keys messages by order id so that events of one order stay on one partition.
func (p *Publisher) Publish(ctx context.Context, event order.Event) {
	msg, err := wire.Encode(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode event", "event", event.Name(), "error", err)
		return
	}

	err = p.writer.WriteMessages(context.WithoutCancel(ctx), skafka.Message{
		Key:     []byte(msg.Key),
		Value:   msg.Data,
		Headers: []skafka.Header{{Key: EventHeader, Value: []byte(msg.Name)}},
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to write event", "event", msg.Name, "error", err)
	}
}

// Close flushes pending messages.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
