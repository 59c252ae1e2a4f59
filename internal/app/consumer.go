package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/messaging/kafka/consumer"
	"go-storefront-api/internal/outbox"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer applies order events to carts until the process is signalled.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	logger = logger.Named("consumer")
	logger.Info("starting cart consumer")

	inf, err := connectInfra(cfg)
	if err != nil {
		return err
	}
	defer inf.Close()

	cartService, _ := newCartService(inf.db, inf.rdb, cfg, logger)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
	defer reader.Close()
	logger.Info("kafka reader initialized",
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	c := consumer.New(reader, logger)
	c.Handle(outbox.EventDeleteCart, consumer.DeleteCartHandler(cartService))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c.Run(ctx)

	logger.Info("consumer stopped")
	return nil
}
