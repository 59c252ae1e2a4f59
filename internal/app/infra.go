package app

import (
	"database/sql"
	"errors"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/shared/connection"

	"github.com/redis/go-redis/v9"
)

const connectRetries = 5

// infra holds the shared connections every process needs.
type infra struct {
	db  *sql.DB
	rdb *redis.Client
}

func connectInfra(cfg config.Config) (*infra, error) {
	if cfg.DBURL == "" {
		return nil, errors.New("DB_URL is required")
	}

	db, err := connection.ConnectDBWithRetry(cfg.DBURL, connectRetries)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &infra{db: db, rdb: rdb}, nil
}

func (i *infra) Close() {
	_ = i.rdb.Close()
	_ = i.db.Close()
}
