package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-storefront-api/internal/shared/database/dbgen"

	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultBatchSize    = 10
)

//go:generate mockgen -source=outbox_service.go -destination=../mock/outbox/outbox_service_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event dbgen.OutboxEvent) error
}

// Processor relays pending outbox rows to a Publisher. Each batch runs in
// one transaction so concurrent workers skip rows another worker holds.
type Processor struct {
	db        *sql.DB
	repo      Repository
	publisher Publisher
	interval  time.Duration
	batchSize int32
	logger    *zap.Logger
}

type ProcessorOption func(*Processor)

func WithInterval(d time.Duration) ProcessorOption {
	return func(p *Processor) { p.interval = d }
}

func WithBatchSize(n int32) ProcessorOption {
	return func(p *Processor) { p.batchSize = n }
}

func WithLogger(l *zap.Logger) ProcessorOption {
	return func(p *Processor) { p.logger = l.Named("outbox.processor") }
}

func NewProcessor(db *sql.DB, repo Repository, publisher Publisher, opts ...ProcessorOption) *Processor {
	if db == nil {
		panic("db cannot be nil")
	}
	p := &Processor{
		db:        db,
		repo:      repo,
		publisher: publisher,
		interval:  DefaultPollInterval,
		batchSize: DefaultBatchSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start polls until ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("outbox processor started", zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox processor stopped")
			return
		case <-ticker.C:
			if _, err := p.ProcessOnce(ctx); err != nil {
				p.logger.Error("outbox batch failed", zap.Error(err))
			}
		}
	}
}

// ProcessOnce publishes one batch and returns how many events were sent.
// A publish failure leaves the event and the rest of the batch pending so
// ordering is kept for the next tick.
func (p *Processor) ProcessOnce(ctx context.Context) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := p.repo.WithTx(tx)

	events, err := qtx.ListPending(ctx, p.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	sent := 0
	for _, e := range events {
		if !json.Valid(e.Payload) {
			p.logger.Warn("outbox event has malformed payload",
				zap.String("event_id", e.ID.String()),
				zap.String("event_type", e.EventType),
			)
			if err := qtx.MarkFailed(ctx, e.ID); err != nil {
				return sent, err
			}
			continue
		}

		if err := p.publisher.Publish(ctx, e); err != nil {
			p.logger.Warn("outbox publish failed, will retry",
				zap.String("event_id", e.ID.String()),
				zap.Error(err),
			)
			break
		}

		if err := qtx.MarkSent(ctx, e.ID); err != nil {
			return sent, err
		}
		sent++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	if sent > 0 {
		p.logger.Debug("outbox batch sent", zap.Int("sent", sent), zap.Int("pending", len(events)))
	}
	return sent, nil
}
