package cart_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-storefront-api/internal/cart"
	mock "go-storefront-api/internal/mock/cart"
	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	svc      cart.Service
	db       *sql.DB
	repo     *mock.MockRepository
	cache    *mock.MockSnapshotCache
	listener *mock.MockChangeListener
	sqlMock  sqlmock.Sqlmock
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := serviceFixture{
		db:       db,
		repo:     mock.NewMockRepository(ctrl),
		cache:    mock.NewMockSnapshotCache(ctrl),
		listener: mock.NewMockChangeListener(ctrl),
		sqlMock:  sqlMock,
	}
	f.svc = cart.NewService(cart.Deps{
		DB:       db,
		Repo:     f.repo,
		Cache:    f.cache,
		Listener: f.listener,
	})
	return f
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCartService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_already_exists", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)

		assert.NoError(t, f.svc.Create(ctx, userID.String()))
	})

	t.Run("success_create_new", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{}, sql.ErrNoRows)
		f.repo.EXPECT().CreateCart(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)

		assert.NoError(t, f.svc.Create(ctx, userID.String()))
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		f := newServiceFixture(t)
		assert.ErrorIs(t, f.svc.Create(ctx, "invalid-uuid"), cart.ErrInvalidUserID)
	})

	t.Run("error_create_cart_fail", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{}, sql.ErrNoRows)
		f.repo.EXPECT().CreateCart(ctx, userID).Return(dbgen.Cart{}, errors.New("db error"))

		assert.Error(t, f.svc.Create(ctx, userID.String()))
	})
}

func TestCartService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("served_from_snapshot", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		s := cart.NewStore()
		_, _ = s.Add(newItem("549", 2))
		f.cache.EXPECT().Get(ctx, userID.String()).Return(s, nil)

		res, err := f.svc.Detail(ctx, userID.String())
		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 1098.0, res.Summary.Subtotal)
		assert.Equal(t, int64(2), res.Summary.TotalItems)
	})

	t.Run("miss_rebuilds_from_postgres_and_primes_cache", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.cache.EXPECT().Get(ctx, userID.String()).Return(nil, cart.ErrCacheMiss)
		f.cache.EXPECT().Generation(ctx, userID.String()).Return(int64(4), nil)
		f.repo.EXPECT().GetDetail(ctx, userID).Return([]dbgen.CartItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "A", UnitPrice: "549.00", Quantity: 2,
				CompareAtPrice: sql.NullString{String: "600.00", Valid: true}},
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "B", UnitPrice: "10.00", Quantity: 1},
		}, nil)
		f.cache.EXPECT().Set(ctx, userID.String(), int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, s *cart.Store) error {
				assert.Equal(t, 2, s.Len())
				return nil
			})

		res, err := f.svc.Detail(ctx, userID.String())
		require.NoError(t, err)
		assert.Equal(t, 1108.0, res.Summary.Subtotal)
		assert.Equal(t, int64(3), res.Summary.TotalItems)
		assert.Equal(t, 102.0, res.Summary.TotalSavings)
	})

	t.Run("empty_cart", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.cache.EXPECT().Get(ctx, userID.String()).Return(nil, cart.ErrCacheMiss)
		f.cache.EXPECT().Generation(ctx, userID.String()).Return(int64(0), nil)
		f.repo.EXPECT().GetDetail(ctx, userID).Return(nil, nil)
		f.cache.EXPECT().Set(ctx, userID.String(), int64(0), gomock.Any()).Return(errors.New("redis down"))

		res, err := f.svc.Detail(ctx, userID.String())
		require.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("postgres_error", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.cache.EXPECT().Get(ctx, userID.String()).Return(nil, cart.ErrCacheMiss)
		f.cache.EXPECT().Generation(ctx, userID.String()).Return(int64(0), nil)
		f.repo.EXPECT().GetDetail(ctx, userID).Return(nil, errors.New("db down"))

		_, err := f.svc.Detail(ctx, userID.String())
		assert.Error(t, err)
	})
	t.Run("generation_unreadable_skips_write_back", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.cache.EXPECT().Get(ctx, userID.String()).Return(nil, errors.New("redis down"))
		f.cache.EXPECT().Generation(ctx, userID.String()).Return(int64(0), errors.New("redis down"))
		f.repo.EXPECT().GetDetail(ctx, userID).Return([]dbgen.CartItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "A", UnitPrice: "5.00", Quantity: 1},
		}, nil)

		res, err := f.svc.Detail(ctx, userID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Summary.TotalItems)
	})
}

func TestCartService_Count(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	userID := uuid.New()

	s := cart.NewStore()
	_, _ = s.Add(newItem("1", 4))
	_, _ = s.Add(newItem("2", 3))
	f.cache.EXPECT().Get(ctx, userID.String()).Return(s, nil)

	count, err := f.svc.Count(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	validReq := func() cart.AddItemRequest {
		return cart.AddItemRequest{
			ProductID:   uuid.NewString(),
			ProductName: "Headphones",
			Price:       decimalPtr("549"),
			Qty:         2,
		}
	}

	t.Run("success_invalidates_snapshot_and_notifies", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		cartID := uuid.New()
		req := validReq()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()

		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
		f.repo.EXPECT().UpsertItem(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.UpsertCartItemParams) (dbgen.CartItem, error) {
				assert.Equal(t, cartID, arg.CartID)
				assert.Equal(t, "549.00", arg.UnitPrice)
				assert.Equal(t, int32(2), arg.Quantity)
				return dbgen.CartItem{ID: uuid.New()}, nil
			})

		gomock.InOrder(
			f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil),
			f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil),
		)

		require.NoError(t, f.svc.AddItem(ctx, userID.String(), req))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("creates_cart_when_missing", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()

		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{}, sql.ErrNoRows)
		f.repo.EXPECT().CreateCart(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)
		f.repo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(dbgen.CartItem{ID: uuid.New()}, nil)
		f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil)
		f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil)

		require.NoError(t, f.svc.AddItem(ctx, userID.String(), validReq()))
	})

	t.Run("invalidate_failure_does_not_fail_mutation", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()

		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)
		f.repo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(dbgen.CartItem{ID: uuid.New()}, nil)
		f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(errors.New("redis down"))
		f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil)

		require.NoError(t, f.svc.AddItem(ctx, userID.String(), validReq()))
	})

	t.Run("validation_fails_before_io", func(t *testing.T) {
		f := newServiceFixture(t)
		req := validReq()
		req.Qty = 0

		err := f.svc.AddItem(ctx, uuid.NewString(), req)
		assert.Error(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative_price", func(t *testing.T) {
		f := newServiceFixture(t)
		req := validReq()
		req.Price = decimalPtr("-1")

		assert.ErrorIs(t, f.svc.AddItem(ctx, uuid.NewString(), req), cart.ErrInvalidPrice)
	})

	t.Run("missing_price", func(t *testing.T) {
		f := newServiceFixture(t)
		req := validReq()
		req.Price = nil

		assert.ErrorIs(t, f.svc.AddItem(ctx, uuid.NewString(), req), cart.ErrInvalidPrice)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("upsert_fails_rolls_back", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)
		f.repo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(dbgen.CartItem{}, errors.New("db error"))

		assert.Error(t, f.svc.AddItem(ctx, userID.String(), validReq()))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestCartService_UpdateQty(t *testing.T) {
	ctx := context.Background()

	t.Run("qty_below_one", func(t *testing.T) {
		f := newServiceFixture(t)
		err := f.svc.UpdateQty(ctx, uuid.NewString(), uuid.NewString(), cart.UpdateQtyRequest{Qty: 0})
		assert.ErrorIs(t, err, cart.ErrInvalidQty)
	})

	t.Run("item_not_found", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)
		f.repo.EXPECT().UpdateQty(ctx, gomock.Any()).Return(dbgen.CartItem{}, sql.ErrNoRows)

		err := f.svc.UpdateQty(ctx, userID.String(), uuid.NewString(), cart.UpdateQtyRequest{Qty: 3})
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	})

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		productID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)
		f.repo.EXPECT().UpdateQty(ctx, gomock.Any()).Return(dbgen.CartItem{Quantity: 3}, nil)
		f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil)
		f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil)

		require.NoError(t, f.svc.UpdateQty(ctx, userID.String(), productID.String(), cart.UpdateQtyRequest{Qty: 3}))
	})
}

func TestCartService_Decrement(t *testing.T) {
	ctx := context.Background()

	t.Run("at_one_removes_line", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		cartID := uuid.New()
		productID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
		f.repo.EXPECT().DecrementQty(ctx, cartID, productID).Return(dbgen.CartItem{}, sql.ErrNoRows)
		f.repo.EXPECT().DeleteItem(ctx, cartID, productID).Return(int64(1), nil)

		f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil)
		f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil)

		require.NoError(t, f.svc.Decrement(ctx, userID.String(), productID.String()))
	})

	t.Run("missing_item", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		cartID := uuid.New()
		productID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
		f.repo.EXPECT().DecrementQty(ctx, cartID, productID).Return(dbgen.CartItem{}, sql.ErrNoRows)
		f.repo.EXPECT().DeleteItem(ctx, cartID, productID).Return(int64(0), nil)

		err := f.svc.Decrement(ctx, userID.String(), productID.String())
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	})
}

func TestCartService_IncrementAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("increment_no_cart", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{}, sql.ErrNoRows)

		err := f.svc.Increment(ctx, userID.String(), uuid.NewString())
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})

	t.Run("increment_success", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		cartID := uuid.New()
		productID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
		f.repo.EXPECT().IncrementQty(ctx, cartID, productID).Return(dbgen.CartItem{Quantity: 2}, nil)
		f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil)
		f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(errors.New("session store down"))

		// listener failures never fail the mutation
		assert.NoError(t, f.svc.Increment(ctx, userID.String(), productID.String()))
	})

	t.Run("delete_missing_item", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		cartID := uuid.New()
		productID := uuid.New()

		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
		f.repo.EXPECT().DeleteItem(ctx, cartID, productID).Return(int64(0), nil)

		err := f.svc.DeleteItem(ctx, userID.String(), productID.String())
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	})

	t.Run("invalid_product_id", func(t *testing.T) {
		f := newServiceFixture(t)
		err := f.svc.DeleteItem(ctx, uuid.NewString(), "nope")
		assert.ErrorIs(t, err, cart.ErrInvalidProductID)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()
		cartID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
		f.repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)

		f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil)
		f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil)

		require.NoError(t, f.svc.Clear(ctx, userID.String()))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("no_cart_is_noop", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{}, sql.ErrNoRows)

		assert.NoError(t, f.svc.Clear(ctx, userID.String()))
	})
}

func TestCartService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("reads_postgres_not_snapshot", func(t *testing.T) {
		f := newServiceFixture(t)
		userID := uuid.New()

		f.repo.EXPECT().GetDetail(ctx, userID).Return([]dbgen.CartItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "A", UnitPrice: "549.00", Quantity: 3},
		}, nil)

		store, err := f.svc.Current(ctx, userID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(3), store.Summary().TotalItems)
	})

	t.Run("invalid_user_id", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.svc.Current(ctx, "nope")
		assert.ErrorIs(t, err, cart.ErrInvalidUserID)
	})
}

func TestCartService_AddItemTx(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	userID := uuid.New()

	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
	f.repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: uuid.New()}, nil)
	f.repo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(dbgen.CartItem{ID: uuid.New()}, nil)

	tx, err := f.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	req := cart.AddItemRequest{
		ProductID:   uuid.NewString(),
		ProductName: "Lamp",
		Price:       decimalPtr("12.50"),
		Qty:         1,
	}
	// nothing is invalidated until the caller reports the commit
	require.NoError(t, f.svc.AddItemTx(ctx, tx, userID.String(), req))
	require.NoError(t, tx.Commit())

	f.cache.EXPECT().Invalidate(ctx, userID.String()).Return(nil)
	f.listener.EXPECT().CartChanged(ctx, userID.String()).Return(nil)
	f.svc.Committed(ctx, userID.String())

	assert.NoError(t, f.sqlMock.ExpectationsWereMet())
}

// A mutation that commits while a cache miss is being rebuilt must not leave
// the rows read before the commit in Redis.
func TestCartService_RebuildRacingMutation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, mr := setupCache(t)
	repo := mock.NewMockRepository(ctrl)
	svc := cart.NewService(cart.Deps{DB: db, Repo: repo, Cache: cache})

	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	row := func(qty int32) []dbgen.CartItem {
		return []dbgen.CartItem{{
			ID: uuid.New(), CartID: cartID, ProductID: productID,
			ProductName: "TV", UnitPrice: "100.00", Quantity: qty,
		}}
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().GetByUserID(ctx, userID).Return(dbgen.Cart{ID: cartID}, nil)
	repo.EXPECT().UpdateQty(ctx, gomock.Any()).Return(dbgen.CartItem{Quantity: 5}, nil)

	// the rebuild reads qty=1, then UpdateQty(5) commits before the write-back
	first := repo.EXPECT().GetDetail(ctx, userID).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID) ([]dbgen.CartItem, error) {
			err := svc.UpdateQty(ctx, userID.String(), productID.String(), cart.UpdateQtyRequest{Qty: 5})
			require.NoError(t, err)
			return row(1), nil
		})
	repo.EXPECT().GetDetail(ctx, userID).Return(row(5), nil).After(first).Times(2)

	_, err = svc.Detail(ctx, userID.String())
	require.NoError(t, err)
	assert.False(t, mr.Exists("cart:"+userID.String()), "stale rebuild must not be cached")

	res, err := svc.Detail(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Summary.TotalItems)
	assert.True(t, mr.Exists("cart:"+userID.String()))

	cached, err := cache.Get(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(5), cached.Summary().TotalItems)

	current, err := svc.Current(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(5), current.Summary().TotalItems)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
