package consumer

import (
	"context"
	"errors"
	"time"

	"go-storefront-api/internal/outbox"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrPoisonMessage marks a message that can never be handled; it is
// committed and dropped instead of retried.
var ErrPoisonMessage = errors.New("poison message")

const (
	defaultAttempts = 3
	defaultBackoff  = time.Second
)

type HandlerFunc func(ctx context.Context, payload []byte) error

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Consumer struct {
	reader   MessageReader
	handlers map[string]HandlerFunc
	attempts int
	backoff  time.Duration
	logger   *zap.Logger
}

func New(reader MessageReader, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		reader:   reader,
		handlers: make(map[string]HandlerFunc),
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
		logger:   logger.Named("consumer"),
	}
}

func (c *Consumer) Handle(eventType string, h HandlerFunc) {
	c.handlers[eventType] = h
}

// SetRetry changes how often a failing handler is retried before the
// message is given up on.
func (c *Consumer) SetRetry(attempts int, backoff time.Duration) {
	if attempts < 1 {
		attempts = 1
	}
	c.attempts = attempts
	c.backoff = backoff
}

// Run fetches until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("started consuming messages")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("consumer stopped")
				return
			}
			c.logger.Warn("fetch message failed", zap.Error(err))
			continue
		}

		if c.handle(ctx, msg) {
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Warn("commit message failed", zap.Error(err))
			}
		}
	}
}

// handle reports whether the message may be committed. Unknown event types
// are skipped and committed.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) bool {
	eventType := getHeader(msg.Headers, outbox.HeaderEventType)
	log := c.logger.With(
		zap.String("event_type", eventType),
		zap.Int64("offset", msg.Offset),
	)

	h, ok := c.handlers[eventType]
	if !ok {
		log.Debug("skipping unknown event type")
		return true
	}

	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		err = h(ctx, msg.Value)
		if err == nil {
			log.Info("event handled")
			return true
		}
		if errors.Is(err, ErrPoisonMessage) {
			log.Error("dropping unprocessable event", zap.Error(err))
			return true
		}

		log.Warn("event handler failed", zap.Int("attempt", attempt), zap.Error(err))
		if attempt == c.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.backoff):
		}
	}

	log.Error("giving up on event", zap.Error(err))
	return false
}
