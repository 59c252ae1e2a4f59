package producer

import (
	"context"

	"go-storefront-api/internal/outbox"
	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher writes outbox events to Kafka, keyed by aggregate so events of
// one order land on the same partition.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, event dbgen.OutboxEvent) error {
	return p.writer.WriteMessages(ctx, toMessage(event))
}

func toMessage(event dbgen.OutboxEvent) kafka.Message {
	return kafka.Message{
		Key:   []byte(event.AggregateID.String()),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: outbox.HeaderEventType, Value: []byte(event.EventType)},
			{Key: outbox.HeaderAggregateType, Value: []byte(event.AggregateType)},
		},
	}
}
