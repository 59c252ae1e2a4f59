package producer

import (
	"context"
	"encoding/json"
	"testing"

	"go-storefront-api/internal/outbox"
	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := NewPublisher(w)

	aggregateID := uuid.New()
	event := dbgen.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: outbox.AggregateOrder,
		AggregateID:   aggregateID,
		EventType:     outbox.EventDeleteCart,
		Payload:       json.RawMessage(`{"user_id":"u1"}`),
	}

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, aggregateID.String(), string(msg.Key))
	assert.JSONEq(t, `{"user_id":"u1"}`, string(msg.Value))
	assert.Equal(t, []kafka.Header{
		{Key: "event_type", Value: []byte("DELETE_CART")},
		{Key: "aggregate_type", Value: []byte("ORDER")},
	}, msg.Headers)
}

func TestPublisher_WriterError(t *testing.T) {
	p := NewPublisher(&recordingWriter{err: assert.AnError})
	err := p.Publish(context.Background(), dbgen.OutboxEvent{Payload: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, assert.AnError)
}
