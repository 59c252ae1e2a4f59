package cart

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cart_cache.go -destination=../mock/cart/cart_cache_mock.go -package=mock
type SnapshotCache interface {
	Get(ctx context.Context, userID string) (*Store, error)
	// Generation returns the user's invalidation counter. Read it before
	// loading rows from Postgres and hand it back to Set.
	Generation(ctx context.Context, userID string) (int64, error)
	// Set stores the snapshot only while the counter still equals gen.
	// Returns ErrSnapshotConflict when an Invalidate landed in between.
	Set(ctx context.Context, userID string, gen int64, store *Store) error
	// Invalidate drops the snapshot and bumps the counter.
	Invalidate(ctx context.Context, userID string) error
}

// generations outlive any snapshot so a rebuild can always compare.
const generationTTL = 24 * time.Hour

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisCache{
		client:  client,
		baseTTL: ttl,
	}
}

func (r *RedisCache) Get(ctx context.Context, userID string) (*Store, error) {
	key := cacheKey(userID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	store, err := DecodeSnapshot(data)
	if err != nil {
		// drop the whole blob, the next read rebuilds from Postgres
		_ = r.client.Del(ctx, key).Err()
		return nil, ErrCacheMiss
	}
	return store, nil
}

func (r *RedisCache) Generation(ctx context.Context, userID string) (int64, error) {
	gen, err := r.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation failed: %w", err)
	}
	return gen, nil
}

func (r *RedisCache) Set(ctx context.Context, userID string, gen int64, store *Store) error {
	blob, err := EncodeSnapshot(store)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	genKey := generationKey(userID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("redis get generation failed: %w", err)
		}
		if current != gen {
			return ErrSnapshotConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(userID), blob, r.ttl())
			return nil
		})
		return err
	}, genKey)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrSnapshotConflict
	}
	if err != nil && !errors.Is(err, ErrSnapshotConflict) {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return err
}

func (r *RedisCache) Invalidate(ctx context.Context, userID string) error {
	genKey := generationKey(userID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, cacheKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate failed: %w", err)
	}
	return nil
}

// ttl spreads expirations so carts written together do not expire together.
func (r *RedisCache) ttl() time.Duration {
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	return r.baseTTL + jitter
}

func cacheKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func generationKey(userID string) string {
	return fmt.Sprintf("cart:gen:%s", userID)
}
