package main

import (
	"log"

	"go-storefront-api/internal/app"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	l, flush := logger.Init(cfg.AppEnv)
	defer flush()

	if err := app.RunConsumer(cfg, l); err != nil {
		l.Error("consumer failed", zap.Error(err))
	}
}
