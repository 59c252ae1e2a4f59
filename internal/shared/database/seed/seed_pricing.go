package seed

import (
	"context"
	"database/sql"
	"log"

	"go-storefront-api/internal/shared/database/dbgen"
)

// SeedShippingRegions loads the regional rates used by the checkout
// calculator. Existing rows are overwritten.
func SeedShippingRegions(ctx context.Context, db dbgen.DBTX) error {
	q := dbgen.New(db)

	regions := []dbgen.UpsertShippingRegionParams{
		{StateCode: "KA", ShippingCost: "30.00", FreeShippingThreshold: "499.00", TaxRate: "0.1800"},
		{StateCode: "MH", ShippingCost: "40.00", FreeShippingThreshold: "499.00", TaxRate: "0.1800"},
		{StateCode: "DL", ShippingCost: "45.00", FreeShippingThreshold: "699.00", TaxRate: "0.1800"},
		{StateCode: "TN", ShippingCost: "35.00", FreeShippingThreshold: "499.00", TaxRate: "0.1200"},
	}

	for _, r := range regions {
		if err := q.UpsertShippingRegion(ctx, r); err != nil {
			return err
		}
	}
	log.Printf("seeded %d shipping regions", len(regions))
	return nil
}

func SeedPromoCodes(ctx context.Context, db dbgen.DBTX) error {
	q := dbgen.New(db)

	promos := []dbgen.UpsertPromoCodeParams{
		{Code: "SAVE10", Kind: "percentage", Value: "10.00", MinOrderAmount: "0.00", MaxDiscount: sql.NullString{String: "200.00", Valid: true}, IsActive: true},
		{Code: "FLAT100", Kind: "fixed", Value: "100.00", MinOrderAmount: "999.00", IsActive: true},
		{Code: "FREESHIP", Kind: "free_shipping", Value: "0.00", MinOrderAmount: "199.00", IsActive: true},
	}

	for _, p := range promos {
		if err := q.UpsertPromoCode(ctx, p); err != nil {
			return err
		}
	}
	log.Printf("seeded %d promo codes", len(promos))
	return nil
}
