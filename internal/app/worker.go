package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/outbox"
	"go-storefront-api/internal/shared/connection"
	"go-storefront-api/internal/shared/database/dbgen"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox events to Kafka until the process is
// signalled.
func RunWorker(cfg config.Config, logger *zap.Logger) error {
	logger = logger.Named("worker")
	logger.Info("starting outbox processor")

	// 1. Connect to database
	db, err := connection.ConnectDBWithRetry(cfg.DBURL, connectRetries)
	if err != nil {
		return err
	}
	defer db.Close()

	// 2. Setup Kafka writer
	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.KafkaTopic, connectRetries)
	if err != nil {
		return err
	}
	defer writer.Close()
	logger.Info("kafka writer initialized", zap.String("topic", cfg.KafkaTopic))

	// 3. Start processor
	processor := outbox.NewProcessor(
		db,
		outbox.NewRepository(dbgen.New(db)),
		producer.NewPublisher(writer),
		outbox.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor.Start(ctx)

	logger.Info("worker stopped")
	return nil
}
