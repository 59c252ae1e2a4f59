package main

import (
	"log"
	"time"

	"go-storefront-api/internal/app"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	l, flush := logger.Init(cfg.AppEnv)
	defer flush()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	closeApp, err := app.BuildApp(r, cfg, l)
	if err != nil {
		l.Fatal("failed to build app", zap.Error(err))
	}
	defer closeApp()

	if err := app.StartHTTPServer(r, app.ServerConfig{
		Port:            cfg.Port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}, l); err != nil {
		l.Error("http server failed", zap.Error(err))
	}
}
