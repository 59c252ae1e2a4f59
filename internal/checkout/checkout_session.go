package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldPromocode     = "promocode"
	fieldAddressID     = "address_id"
	fieldPaymentMethod = "payment_method"
	fieldGeneration    = "generation"
)

// Session is the per-user checkout selection. Generation moves on every
// change that affects pricing, so a summary computed against an older
// generation can be recognised as stale.
type Session struct {
	Promocode     string
	AddressID     string
	PaymentMethod string
	Generation    int64
}

//go:generate mockgen -source=checkout_session.go -destination=../mock/checkout/checkout_session_mock.go -package=mock
type SessionStore interface {
	Get(ctx context.Context, userID string) (Session, error)
	Generation(ctx context.Context, userID string) (int64, error)
	SetPromo(ctx context.Context, userID, code string) (int64, error)
	ClearPromo(ctx context.Context, userID string) (int64, error)
	SetAddress(ctx context.Context, userID, addressID string) (int64, error)
	SetPaymentMethod(ctx context.Context, userID, method string) error
	BumpGeneration(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("checkout:session:%s", userID)
}

func (s *RedisSessionStore) Get(ctx context.Context, userID string) (Session, error) {
	vals, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("redis hgetall failed: %w", err)
	}

	sess := Session{
		Promocode:     vals[fieldPromocode],
		AddressID:     vals[fieldAddressID],
		PaymentMethod: vals[fieldPaymentMethod],
	}
	if sess.PaymentMethod == "" {
		sess.PaymentMethod = PaymentMethodCOD
	}
	if g := vals[fieldGeneration]; g != "" {
		sess.Generation, _ = strconv.ParseInt(g, 10, 64)
	}
	return sess, nil
}

func (s *RedisSessionStore) Generation(ctx context.Context, userID string) (int64, error) {
	g, err := s.client.HGet(ctx, sessionKey(userID), fieldGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis hget failed: %w", err)
	}
	return g, nil
}

// mutate applies the field changes and bumps the generation atomically.
func (s *RedisSessionStore) mutate(ctx context.Context, userID string, set map[string]interface{}, del ...string) (int64, error) {
	key := sessionKey(userID)
	var incr *redis.IntCmd

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(set) > 0 {
			pipe.HSet(ctx, key, set)
		}
		if len(del) > 0 {
			pipe.HDel(ctx, key, del...)
		}
		incr = pipe.HIncrBy(ctx, key, fieldGeneration, 1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis session update failed: %w", err)
	}
	return incr.Val(), nil
}

func (s *RedisSessionStore) SetPromo(ctx context.Context, userID, code string) (int64, error) {
	return s.mutate(ctx, userID, map[string]interface{}{fieldPromocode: code})
}

func (s *RedisSessionStore) ClearPromo(ctx context.Context, userID string) (int64, error) {
	return s.mutate(ctx, userID, nil, fieldPromocode)
}

func (s *RedisSessionStore) SetAddress(ctx context.Context, userID, addressID string) (int64, error) {
	return s.mutate(ctx, userID, map[string]interface{}{fieldAddressID: addressID})
}

// SetPaymentMethod does not move the generation; the method never changes
// the price.
func (s *RedisSessionStore) SetPaymentMethod(ctx context.Context, userID, method string) error {
	key := sessionKey(userID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldPaymentMethod, method)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis session update failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) BumpGeneration(ctx context.Context, userID string) (int64, error) {
	return s.mutate(ctx, userID, nil)
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// CartChanged lets the session store listen to cart mutations.
func (s *RedisSessionStore) CartChanged(ctx context.Context, userID string) error {
	_, err := s.BumpGeneration(ctx, userID)
	return err
}
