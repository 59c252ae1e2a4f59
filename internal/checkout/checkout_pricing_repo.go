package checkout

import (
	"context"

	"go-storefront-api/internal/shared/database/dbgen"
)

//go:generate mockgen -source=checkout_pricing_repo.go -destination=../mock/checkout/checkout_pricing_repo_mock.go -package=mock
type PricingRepository interface {
	GetShippingRegion(ctx context.Context, stateCode string) (dbgen.ShippingRegion, error)
	GetPromoCode(ctx context.Context, code string) (dbgen.PromoCode, error)
}

type pricingRepository struct {
	queries *dbgen.Queries
}

func NewPricingRepository(q *dbgen.Queries) PricingRepository {
	return &pricingRepository{queries: q}
}

func (r *pricingRepository) GetShippingRegion(ctx context.Context, stateCode string) (dbgen.ShippingRegion, error) {
	return r.queries.GetShippingRegion(ctx, stateCode)
}

func (r *pricingRepository) GetPromoCode(ctx context.Context, code string) (dbgen.PromoCode, error) {
	return r.queries.GetPromoCode(ctx, code)
}
