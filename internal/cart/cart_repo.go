package cart

import (
	"context"
	"database/sql"

	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	CreateCart(ctx context.Context, userID uuid.UUID) (dbgen.Cart, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (dbgen.Cart, error)
	GetDetail(ctx context.Context, userID uuid.UUID) ([]dbgen.CartItem, error)

	UpsertItem(ctx context.Context, arg dbgen.UpsertCartItemParams) (dbgen.CartItem, error)
	UpdateQty(ctx context.Context, arg dbgen.UpdateCartItemQtyParams) (dbgen.CartItem, error)
	IncrementQty(ctx context.Context, cartID, productID uuid.UUID) (dbgen.CartItem, error)
	DecrementQty(ctx context.Context, cartID, productID uuid.UUID) (dbgen.CartItem, error)

	DeleteItem(ctx context.Context, cartID, productID uuid.UUID) (int64, error)
	Delete(ctx context.Context, cartID uuid.UUID) error
	DeleteAllItems(ctx context.Context, cartID uuid.UUID) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}

	return r
}

func (r *repository) CreateCart(ctx context.Context, userID uuid.UUID) (dbgen.Cart, error) {
	return r.queries.CreateCart(ctx, userID)
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (dbgen.Cart, error) {
	return r.queries.GetCartByUserID(ctx, userID)
}

func (r *repository) GetDetail(ctx context.Context, userID uuid.UUID) ([]dbgen.CartItem, error) {
	return r.queries.GetCartDetail(ctx, userID)
}

func (r *repository) UpsertItem(ctx context.Context, arg dbgen.UpsertCartItemParams) (dbgen.CartItem, error) {
	return r.queries.UpsertCartItem(ctx, arg)
}

func (r *repository) UpdateQty(ctx context.Context, arg dbgen.UpdateCartItemQtyParams) (dbgen.CartItem, error) {
	return r.queries.UpdateCartItemQty(ctx, arg)
}

func (r *repository) IncrementQty(ctx context.Context, cartID, productID uuid.UUID) (dbgen.CartItem, error) {
	return r.queries.IncrementCartItemQty(ctx, dbgen.IncrementCartItemQtyParams{
		CartID:    cartID,
		ProductID: productID,
	})
}

// DecrementQty returns sql.ErrNoRows when the line is at quantity 1.
func (r *repository) DecrementQty(ctx context.Context, cartID, productID uuid.UUID) (dbgen.CartItem, error) {
	return r.queries.DecrementCartItemQty(ctx, dbgen.DecrementCartItemQtyParams{
		CartID:    cartID,
		ProductID: productID,
	})
}

func (r *repository) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) (int64, error) {
	return r.queries.DeleteCartItem(ctx, dbgen.DeleteCartItemParams{
		CartID:    cartID,
		ProductID: productID,
	})
}

func (r *repository) Delete(ctx context.Context, cartID uuid.UUID) error {
	return r.queries.DeleteCart(ctx, cartID)
}

func (r *repository) DeleteAllItems(ctx context.Context, cartID uuid.UUID) error {
	return r.queries.DeleteAllCartItems(ctx, cartID)
}
