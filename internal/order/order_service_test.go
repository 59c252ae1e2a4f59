package order_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-storefront-api/internal/address"
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/checkout"
	checkoutmock "go-storefront-api/internal/mock/checkout"
	mock "go-storefront-api/internal/mock/order"
	outboxmock "go-storefront-api/internal/mock/outbox"
	"go-storefront-api/internal/order"
	"go-storefront-api/internal/outbox"
	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var placedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type serviceFixture struct {
	svc        order.Service
	repo       *mock.MockRepository
	outboxRepo *outboxmock.MockRepository
	checkout   *checkoutmock.MockService
	sqlMock    sqlmock.Sqlmock
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := serviceFixture{
		repo:       mock.NewMockRepository(ctrl),
		outboxRepo: outboxmock.NewMockRepository(ctrl),
		checkout:   checkoutmock.NewMockService(ctrl),
		sqlMock:    sqlMock,
	}
	f.svc = order.NewService(order.Deps{
		DB:         db,
		Repo:       f.repo,
		OutboxRepo: f.outboxRepo,
		Checkout:   f.checkout,
		Now:        func() time.Time { return placedAt },
	})
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricedQuote(productID uuid.UUID) checkout.Quote {
	return checkout.Quote{
		Items: []cart.Item{{
			ProductID:   productID,
			ProductName: "Headphones",
			UnitPrice:   dec("549"),
			Quantity:    2,
		}},
		Summary: checkout.Summary{
			Subtotal:         dec("1098"),
			Discount:         dec("109.8"),
			Shipping:         decimal.Zero,
			Tax:              dec("177.88"),
			Total:            dec("1166.08"),
			PromocodeApplied: true,
			FreeShipping:     true,
			Promocode:        "SAVE10",
		},
		Generation: 3,
	}
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	addressID := uuid.NewString()
	req := order.CheckoutRequest{AddressID: addressID, PaymentMethod: "cod", Note: " leave at door "}
	sel := checkout.Selection{AddressID: addressID, PaymentMethod: "cod"}
	addr := address.AddressResponse{ID: addressID, Name: "Asha", City: "Bengaluru", State: "KA"}

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture(t)
		productID := uuid.New()
		orderID := uuid.New()

		f.checkout.EXPECT().Validate(gomock.Any(), userID, sel).Return(addr, nil)
		f.checkout.EXPECT().Quote(gomock.Any(), userID, "KA").Return(pricedQuote(productID), nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error) {
				assert.Equal(t, order.StatusPending, arg.Status)
				assert.Equal(t, "cod", arg.PaymentMethod)
				assert.Equal(t, "1098.00", arg.SubtotalPrice)
				assert.Equal(t, "109.80", arg.DiscountPrice)
				assert.Equal(t, "0.00", arg.ShippingPrice)
				assert.Equal(t, "177.88", arg.TaxPrice)
				assert.Equal(t, "1166.08", arg.TotalPrice)
				assert.Equal(t, sql.NullString{String: "SAVE10", Valid: true}, arg.Promocode)
				assert.Equal(t, sql.NullString{String: "leave at door", Valid: true}, arg.Note)
				assert.Equal(t, addressID, arg.AddressID.UUID.String())
				assert.Contains(t, string(arg.AddressSnapshot), `"city":"Bengaluru"`)
				assert.Regexp(t, `^ORD-\d+-[0-9A-F]{4}$`, arg.OrderNumber)

				return dbgen.Order{
					ID:              orderID,
					OrderNumber:     arg.OrderNumber,
					UserID:          arg.UserID,
					Status:          arg.Status,
					PaymentMethod:   arg.PaymentMethod,
					PaymentStatus:   arg.PaymentStatus,
					AddressSnapshot: arg.AddressSnapshot,
					SubtotalPrice:   arg.SubtotalPrice,
					DiscountPrice:   arg.DiscountPrice,
					ShippingPrice:   arg.ShippingPrice,
					TaxPrice:        arg.TaxPrice,
					TotalPrice:      arg.TotalPrice,
					Promocode:       arg.Promocode,
					Note:            arg.Note,
					PlacedAt:        placedAt,
				}, nil
			})
		f.repo.EXPECT().CreateOrderItem(gomock.Any(), dbgen.CreateOrderItemParams{
			OrderID:      orderID,
			ProductID:    productID,
			NameSnapshot: "Headphones",
			UnitPrice:    "549.00",
			Quantity:     2,
			TotalPrice:   "1098.00",
		}).Return(nil)
		f.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(f.outboxRepo)
		f.outboxRepo.EXPECT().CreateOutboxEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateOutboxEventParams) error {
				assert.Equal(t, outbox.EventDeleteCart, arg.EventType)
				assert.Equal(t, orderID, arg.AggregateID)
				assert.Contains(t, string(arg.Payload), userID)
				return nil
			})
		f.sqlMock.ExpectCommit()
		f.checkout.EXPECT().Reset(gomock.Any(), userID).Return(nil)

		res, err := f.svc.Checkout(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, orderID.String(), res.ID)
		assert.Equal(t, 1166.08, res.TotalPrice)
		assert.Equal(t, 109.8, res.DiscountPrice)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 1098.0, res.Items[0].Subtotal)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing address stops before pricing", func(t *testing.T) {
		f := newServiceFixture(t)
		f.checkout.EXPECT().Validate(gomock.Any(), userID, checkout.Selection{}).
			Return(address.AddressResponse{}, checkout.ErrAddressRequired)

		_, err := f.svc.Checkout(ctx, userID, order.CheckoutRequest{})
		assert.ErrorIs(t, err, checkout.ErrAddressRequired)
	})

	t.Run("online payment is rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		f.checkout.EXPECT().Validate(gomock.Any(), userID, gomock.Any()).
			Return(address.AddressResponse{}, checkout.ErrOnlinePaymentUnavailable)

		_, err := f.svc.Checkout(ctx, userID, order.CheckoutRequest{AddressID: addressID, PaymentMethod: "online"})
		assert.ErrorIs(t, err, checkout.ErrOnlinePaymentUnavailable)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newServiceFixture(t)
		f.checkout.EXPECT().Validate(gomock.Any(), userID, sel).Return(addr, nil)
		f.checkout.EXPECT().Quote(gomock.Any(), userID, "KA").Return(checkout.Quote{}, nil)

		_, err := f.svc.Checkout(ctx, userID, req)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("degraded pricing blocks the order", func(t *testing.T) {
		f := newServiceFixture(t)
		q := pricedQuote(uuid.New())
		q.Summary = checkout.Summary{Subtotal: dec("1098"), Total: dec("1098"), Degraded: true}

		f.checkout.EXPECT().Validate(gomock.Any(), userID, sel).Return(addr, nil)
		f.checkout.EXPECT().Quote(gomock.Any(), userID, "KA").Return(q, nil)

		_, err := f.svc.Checkout(ctx, userID, req)
		assert.ErrorIs(t, err, checkout.ErrPricingUnavailable)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		f := newServiceFixture(t)
		f.checkout.EXPECT().Validate(gomock.Any(), userID, sel).Return(addr, nil)
		f.checkout.EXPECT().Quote(gomock.Any(), userID, "KA").Return(pricedQuote(uuid.New()), nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(dbgen.Order{ID: uuid.New()}, nil)
		f.repo.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).Return(nil)
		f.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(f.outboxRepo)
		f.outboxRepo.EXPECT().CreateOutboxEvent(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		f.sqlMock.ExpectRollback()

		_, err := f.svc.Checkout(ctx, userID, req)
		assert.ErrorIs(t, err, order.ErrOrderFailed)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("session reset failure keeps the order", func(t *testing.T) {
		f := newServiceFixture(t)
		f.checkout.EXPECT().Validate(gomock.Any(), userID, sel).Return(addr, nil)
		f.checkout.EXPECT().Quote(gomock.Any(), userID, "KA").Return(pricedQuote(uuid.New()), nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(dbgen.Order{ID: uuid.New(), TotalPrice: "1166.08"}, nil)
		f.repo.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).Return(nil)
		f.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(f.outboxRepo)
		f.outboxRepo.EXPECT().CreateOutboxEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.sqlMock.ExpectCommit()
		f.checkout.EXPECT().Reset(gomock.Any(), userID).Return(errors.New("redis down"))

		res, err := f.svc.Checkout(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, 1166.08, res.TotalPrice)
	})
}

func TestOrderService_Detail(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("owner sees items", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), orderID).Return(dbgen.Order{ID: orderID, UserID: userID, TotalPrice: "10.00"}, nil)
		f.repo.EXPECT().GetItems(gomock.Any(), orderID).Return([]dbgen.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), NameSnapshot: "Cable", UnitPrice: "5.00", Quantity: 2, TotalPrice: "10.00"},
		}, nil)

		res, err := f.svc.Detail(ctx, orderID.String(), userID.String())
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 10.0, res.TotalPrice)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), orderID).Return(dbgen.Order{ID: orderID, UserID: uuid.New()}, nil)

		_, err := f.svc.Detail(ctx, orderID.String(), userID.String())
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), orderID).Return(dbgen.Order{}, sql.ErrNoRows)

		_, err := f.svc.Detail(ctx, orderID.String(), userID.String())
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("bad id", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.svc.Detail(ctx, "nope", userID.String())
		assert.ErrorIs(t, err, order.ErrInvalidOrderID)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("pending order", func(t *testing.T) {
		f := newServiceFixture(t)
		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByID(gomock.Any(), orderID).Return(dbgen.Order{ID: orderID, UserID: userID, Status: order.StatusPending}, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), orderID, order.StatusCancelled).
			Return(dbgen.Order{ID: orderID, UserID: userID, Status: order.StatusCancelled}, nil)
		f.sqlMock.ExpectCommit()

		res, err := f.svc.Cancel(ctx, orderID.String(), userID.String())
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, res.Status)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("shipped order", func(t *testing.T) {
		f := newServiceFixture(t)
		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().GetByID(gomock.Any(), orderID).Return(dbgen.Order{ID: orderID, UserID: userID, Status: order.StatusShipped}, nil)
		f.sqlMock.ExpectRollback()

		_, err := f.svc.Cancel(ctx, orderID.String(), userID.String())
		assert.ErrorIs(t, err, order.ErrCannotCancel)
	})
}

func TestOrderService_UpdateStatusByAdmin(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "pending to processing", from: order.StatusPending, to: order.StatusProcessing},
		{name: "processing to shipped", from: order.StatusProcessing, to: order.StatusShipped},
		{name: "shipped to delivered", from: order.StatusShipped, to: order.StatusDelivered},
		{name: "delivered to completed", from: order.StatusDelivered, to: order.StatusCompleted},
		{name: "skip ahead", from: order.StatusPending, to: order.StatusShipped, wantErr: order.ErrInvalidStatusTransition},
		{name: "cancelled is final", from: order.StatusCancelled, to: order.StatusProcessing, wantErr: order.ErrInvalidStatusTransition},
		{name: "cannot cancel shipped", from: order.StatusShipped, to: order.StatusCancelled, wantErr: order.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			f.sqlMock.ExpectBegin()
			f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
			f.repo.EXPECT().GetByID(gomock.Any(), orderID).Return(dbgen.Order{ID: orderID, Status: tt.from}, nil)

			if tt.wantErr == nil {
				f.repo.EXPECT().UpdateStatus(gomock.Any(), orderID, tt.to).Return(dbgen.Order{ID: orderID, Status: tt.to}, nil)
				f.sqlMock.ExpectCommit()
			} else {
				f.sqlMock.ExpectRollback()
			}

			res, err := f.svc.UpdateStatusByAdmin(ctx, orderID.String(), tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, res.Status)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.svc.UpdateStatusByAdmin(ctx, orderID.String(), "LOST")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("maps rows and total", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.EXPECT().ListByUser(gomock.Any(), dbgen.ListOrdersByUserParams{
			UserID: userID,
			Status: sql.NullString{String: order.StatusPending, Valid: true},
			Limit:  10,
			Offset: 10,
		}).Return([]dbgen.ListOrdersByUserRow{
			{ID: uuid.New(), OrderNumber: "ORD-1", Status: order.StatusPending, TotalPrice: "99.50", TotalCount: 11},
		}, nil)

		res, total, err := f.svc.List(ctx, userID.String(), "pending", 2, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(11), total)
		require.Len(t, res, 1)
		assert.Equal(t, 99.5, res[0].TotalPrice)
		assert.NotNil(t, res[0].Items)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		f := newServiceFixture(t)
		f.repo.EXPECT().ListByUser(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, total, err := f.svc.List(ctx, userID.String(), "", 1, 10)
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Zero(t, total)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		f := newServiceFixture(t)
		_, _, err := f.svc.List(ctx, userID.String(), "LOST", 1, 10)
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestOrderService_ListAdmin(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.EXPECT().ListAdmin(gomock.Any(), dbgen.ListOrdersAdminParams{
		Search: sql.NullString{String: "ORD-1", Valid: true},
		Limit:  20,
		Offset: 0,
	}).Return([]dbgen.ListOrdersAdminRow{
		{ID: uuid.New(), OrderNumber: "ORD-1", UserID: uuid.New(), Status: order.StatusShipped, TotalPrice: "10.00", TotalCount: 1},
	}, nil)

	res, total, err := f.svc.ListAdmin(context.Background(), "", " ORD-1 ", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, res, 1)
	assert.NotEmpty(t, res[0].UserID)
}
