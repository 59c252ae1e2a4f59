package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/shared/database/dbgen"
	"go-storefront-api/internal/shared/database/helper"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	PromoKindPercentage   = "percentage"
	PromoKindFixed        = "fixed"
	PromoKindFreeShipping = "free_shipping"
)

var hundred = decimal.NewFromInt(100)

// Summary is one priced view of a cart. Total always equals
// Subtotal - Discount + Shipping + Tax.
type Summary struct {
	Subtotal         decimal.Decimal
	Discount         decimal.Decimal
	Shipping         decimal.Decimal
	Tax              decimal.Decimal
	Total            decimal.Decimal
	PromocodeApplied bool
	FreeShipping     bool
	Promocode        string
	// Degraded marks a local subtotal-only result produced while the
	// pricing backend was unreachable.
	Degraded bool
}

//go:generate mockgen -source=checkout_calculator.go -destination=../mock/checkout/checkout_calculator_mock.go -package=mock
type Pricer interface {
	Calculate(ctx context.Context, items []cart.Item, stateCode, promoCode string) Summary
}

type rates struct {
	threshold decimal.Decimal
	shipping  decimal.Decimal
	taxRate   decimal.Decimal
	promo     *dbgen.PromoCode
}

type Calculator struct {
	repo     PricingRepository
	defaults config.PricingConfig
	breaker  *gobreaker.CircuitBreaker[rates]
	now      func() time.Time
	logger   *zap.Logger
}

type CalculatorOption func(*Calculator)

func WithClock(now func() time.Time) CalculatorOption {
	return func(c *Calculator) { c.now = now }
}

func WithBreakerSettings(st gobreaker.Settings) CalculatorOption {
	return func(c *Calculator) { c.breaker = gobreaker.NewCircuitBreaker[rates](st) }
}

func WithLogger(l *zap.Logger) CalculatorOption {
	return func(c *Calculator) { c.logger = l.Named("checkout.calculator") }
}

func NewCalculator(repo PricingRepository, defaults config.PricingConfig, opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		repo:     repo,
		defaults: defaults,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	c.breaker = gobreaker.NewCircuitBreaker[rates](gobreaker.Settings{
		Name:        "pricing",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate never fails: when rates cannot be fetched it returns the
// degraded subtotal-only summary.
func (c *Calculator) Calculate(ctx context.Context, items []cart.Item, stateCode, promoCode string) Summary {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt32(it.Quantity)))
	}
	subtotal = subtotal.Round(2)
	promoCode = strings.TrimSpace(promoCode)

	r, err := c.breaker.Execute(func() (rates, error) {
		return c.fetchRates(ctx, stateCode, promoCode)
	})
	if err != nil {
		c.logger.Warn("pricing backend unavailable, using local subtotal",
			zap.String("state_code", stateCode),
			zap.Error(err),
		)
		return Summary{
			Subtotal:  subtotal,
			Discount:  decimal.Zero,
			Shipping:  decimal.Zero,
			Tax:       decimal.Zero,
			Total:     subtotal,
			Promocode: promoCode,
			Degraded:  true,
		}
	}

	return c.price(subtotal, r, promoCode)
}

func (c *Calculator) fetchRates(ctx context.Context, stateCode, promoCode string) (rates, error) {
	r := rates{
		threshold: c.defaults.FreeShippingThreshold,
		shipping:  c.defaults.ShippingCost,
		taxRate:   c.defaults.TaxRate,
	}

	if stateCode != "" {
		region, err := c.repo.GetShippingRegion(ctx, stateCode)
		switch {
		case err == nil:
			r.threshold = helper.StringToDecimal(region.FreeShippingThreshold)
			r.shipping = helper.StringToDecimal(region.ShippingCost)
			r.taxRate = helper.StringToDecimal(region.TaxRate)
		case errors.Is(err, sql.ErrNoRows):
			// unknown region: keep defaults
		default:
			return rates{}, fmt.Errorf("shipping region %q: %w", stateCode, err)
		}
	}

	if promoCode != "" {
		promo, err := c.repo.GetPromoCode(ctx, promoCode)
		switch {
		case err == nil:
			r.promo = &promo
		case errors.Is(err, sql.ErrNoRows):
		default:
			return rates{}, fmt.Errorf("promo code: %w", err)
		}
	}

	return r, nil
}

func (c *Calculator) price(subtotal decimal.Decimal, r rates, promoCode string) Summary {
	sum := Summary{
		Subtotal:  subtotal,
		Discount:  decimal.Zero,
		Promocode: promoCode,
	}

	promoFreeShipping := false
	if r.promo != nil && c.promoUsable(*r.promo, subtotal) {
		sum.PromocodeApplied = true
		value := helper.StringToDecimal(r.promo.Value)

		switch r.promo.Kind {
		case PromoKindPercentage:
			d := subtotal.Mul(value).Div(hundred)
			if r.promo.MaxDiscount.Valid {
				d = decimal.Min(d, helper.NullStringToDecimal(r.promo.MaxDiscount))
			}
			sum.Discount = d
		case PromoKindFixed:
			sum.Discount = value
		case PromoKindFreeShipping:
			promoFreeShipping = true
		default:
			sum.PromocodeApplied = false
		}
		sum.Discount = decimal.Min(sum.Discount, subtotal).Round(2)
	}

	switch {
	case subtotal.IsZero():
		sum.Shipping = decimal.Zero
	case promoFreeShipping || subtotal.GreaterThanOrEqual(r.threshold):
		sum.Shipping = decimal.Zero
		sum.FreeShipping = true
	default:
		sum.Shipping = r.shipping.Round(2)
	}

	sum.Tax = subtotal.Sub(sum.Discount).Mul(r.taxRate).Round(2)
	sum.Total = subtotal.Sub(sum.Discount).Add(sum.Shipping).Add(sum.Tax)
	return sum
}

func (c *Calculator) promoUsable(p dbgen.PromoCode, subtotal decimal.Decimal) bool {
	if !p.IsActive {
		return false
	}
	now := c.now()
	if p.StartsAt.Valid && now.Before(p.StartsAt.Time) {
		return false
	}
	if p.EndsAt.Valid && !now.Before(p.EndsAt.Time) {
		return false
	}
	return subtotal.GreaterThanOrEqual(helper.StringToDecimal(p.MinOrderAmount))
}
