package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"

	ContextIdempotencyLockKey  = "idempotency_lock_key"
	ContextIdempotencyCacheKey = "idempotency_cache_key"

	idempotencyLockTTL = 30 * time.Second
	// IdempotencyResponseTTL is how long a successful response is replayed.
	IdempotencyResponseTTL = 24 * time.Hour
)

// Idempotency replays a cached response for a repeated key and rejects a
// concurrent request with the same key. The handler owns releasing the lock
// and caching its response under ContextIdempotencyCacheKey.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			abortWith(c, ErrIdempotencyKeyRequired)
			return
		}

		scope := UserID(c)
		if scope == "" {
			scope = c.ClientIP()
		}
		cacheKey := fmt.Sprintf("idempotency:resp:%s:%s", scope, key)
		lockKey := fmt.Sprintf("idempotency:lock:%s:%s", scope, key)
		ctx := c.Request.Context()

		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var data json.RawMessage = cached
			c.Header("Idempotent-Replayed", "true")
			response.Success(c, http.StatusOK, data, nil)
			c.Abort()
			return
		} else if err != redis.Nil {
			log.Warn("idempotency cache read failed", zap.Error(err))
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
		if err != nil {
			// Redis down: let the request through rather than block checkout.
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			abortWith(c, ErrRequestInProgress)
			return
		}

		c.Set(ContextIdempotencyLockKey, lockKey)
		c.Set(ContextIdempotencyCacheKey, cacheKey)
		c.Next()
	}
}
