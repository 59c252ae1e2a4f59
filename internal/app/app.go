package app

import (
	"errors"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, applies migrations and mounts every
// module on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	// 1. Setup Infrastructure
	inf, err := connectInfra(cfg)
	if err != nil {
		return nil, err
	}

	if err := connection.RunMigrations(inf.db, cfg.MigrationsPath); err != nil {
		inf.Close()
		return nil, err
	}

	// 2. Register Modules & Routes
	router.Use(middleware.RequestID())
	registerModules(router, inf.db, inf.rdb, cfg, logger)

	return inf.Close, nil
}
