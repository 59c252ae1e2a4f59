package address

import (
	"context"
	"database/sql"

	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=address_repo.go -destination=../mock/address/address_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbgen.Address, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (dbgen.Address, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	Create(ctx context.Context, arg dbgen.CreateAddressParams) (dbgen.Address, error)
	Update(ctx context.Context, arg dbgen.UpdateAddressParams) (dbgen.Address, error)
	SoftDelete(ctx context.Context, id, userID uuid.UUID) (int64, error)

	UnsetDefaultByUser(ctx context.Context, userID uuid.UUID) error
	SetDefault(ctx context.Context, id, userID uuid.UUID) (dbgen.Address, error)
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{queries: r.queries.WithTx(sqlTx)}
	}
	return r
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbgen.Address, error) {
	return r.queries.ListAddressesByUser(ctx, userID)
}

func (r *repository) GetByID(ctx context.Context, id, userID uuid.UUID) (dbgen.Address, error) {
	return r.queries.GetAddressByID(ctx, dbgen.GetAddressByIDParams{ID: id, UserID: userID})
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.queries.CountAddressesByUser(ctx, userID)
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateAddressParams) (dbgen.Address, error) {
	return r.queries.CreateAddress(ctx, arg)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateAddressParams) (dbgen.Address, error) {
	return r.queries.UpdateAddress(ctx, arg)
}

func (r *repository) SoftDelete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return r.queries.SoftDeleteAddress(ctx, dbgen.SoftDeleteAddressParams{ID: id, UserID: userID})
}

func (r *repository) UnsetDefaultByUser(ctx context.Context, userID uuid.UUID) error {
	return r.queries.UnsetDefaultAddressByUser(ctx, userID)
}

func (r *repository) SetDefault(ctx context.Context, id, userID uuid.UUID) (dbgen.Address, error) {
	return r.queries.SetDefaultAddress(ctx, dbgen.SetDefaultAddressParams{ID: id, UserID: userID})
}
