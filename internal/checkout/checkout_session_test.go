package checkout_test

import (
	"context"
	"testing"
	"time"

	"go-storefront-api/internal/checkout"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T) (*checkout.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return checkout.NewRedisSessionStore(rdb, time.Hour), mr
}

func TestRedisSessionStore_Defaults(t *testing.T) {
	store, _ := newSessionStore(t)

	sess, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, checkout.PaymentMethodCOD, sess.PaymentMethod)
	assert.Empty(t, sess.Promocode)
	assert.Empty(t, sess.AddressID)
	assert.Zero(t, sess.Generation)

	gen, err := store.Generation(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, gen)
}

func TestRedisSessionStore_GenerationMoves(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()

	g1, err := store.SetPromo(ctx, "u1", "SAVE10")
	require.NoError(t, err)
	g2, err := store.SetAddress(ctx, "u1", "addr-1")
	require.NoError(t, err)
	g3, err := store.ClearPromo(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, []int64{g1, g2, g3})

	require.NoError(t, store.CartChanged(ctx, "u1"))

	sess, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), sess.Generation)
	assert.Empty(t, sess.Promocode)
	assert.Equal(t, "addr-1", sess.AddressID)

	ttl := mr.TTL("checkout:session:u1")
	assert.True(t, ttl > 0 && ttl <= time.Hour, "ttl %s", ttl)
}

func TestRedisSessionStore_PaymentMethodKeepsGeneration(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()

	_, err := store.SetPromo(ctx, "u1", "SAVE10")
	require.NoError(t, err)
	require.NoError(t, store.SetPaymentMethod(ctx, "u1", checkout.PaymentMethodCOD))

	gen, err := store.Generation(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestRedisSessionStore_Delete(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()

	_, err := store.SetPromo(ctx, "u1", "SAVE10")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "u1"))
	assert.False(t, mr.Exists("checkout:session:u1"))
}

func TestRedisSessionStore_RedisDown(t *testing.T) {
	store, mr := newSessionStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "u1")
	assert.Error(t, err)
	_, err = store.SetPromo(context.Background(), "u1", "X")
	assert.Error(t, err)
}
