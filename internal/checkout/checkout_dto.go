package checkout

import (
	"go-storefront-api/internal/address"
)

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// ==================== REQUEST STRUCTS ====================

type SummaryRequest struct {
	StateCode string `json:"state_code"`
	Promocode string `json:"promocode"`
}

type PromoRequest struct {
	StateCode string `json:"state_code"`
	Promocode string `json:"promocode"`
}

type SelectAddressRequest struct {
	AddressID string `json:"address_id" binding:"required"`
}

type SelectPaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// Selection is what an order is placed with.
type Selection struct {
	AddressID     string
	PaymentMethod string
}

// ==================== RESPONSE STRUCTS ====================

type SummaryResponse struct {
	Subtotal         float64 `json:"subtotal"`
	DiscountAmount   float64 `json:"discount_amount"`
	ShippingCost     float64 `json:"shipping_cost"`
	TaxAmount        float64 `json:"tax_amount"`
	TotalAmount      float64 `json:"total_amount"`
	PromocodeApplied bool    `json:"promocode_applied"`
	FreeShipping     bool    `json:"free_shipping"`
	Promocode        string  `json:"promocode,omitempty"`
	Degraded         bool    `json:"degraded"`
	Generation       int64   `json:"generation"`
}

type PaymentMethodOption struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

type OptionsResponse struct {
	Addresses         []address.AddressResponse `json:"addresses"`
	SelectedAddressID string                    `json:"selected_address_id"`
	PaymentMethod     string                    `json:"payment_method"`
	PaymentMethods    []PaymentMethodOption     `json:"payment_methods"`
	Promocode         string                    `json:"promocode,omitempty"`
}

type SelectionResponse struct {
	SelectedAddressID string `json:"selected_address_id"`
	PaymentMethod     string `json:"payment_method"`
}

var paymentMethods = []PaymentMethodOption{
	{Code: PaymentMethodCOD, Label: "Cash on delivery", Enabled: true},
	{Code: PaymentMethodOnline, Label: "Online payment", Enabled: false},
}

func toSummaryResponse(s Summary, generation int64) SummaryResponse {
	return SummaryResponse{
		Subtotal:         s.Subtotal.InexactFloat64(),
		DiscountAmount:   s.Discount.InexactFloat64(),
		ShippingCost:     s.Shipping.InexactFloat64(),
		TaxAmount:        s.Tax.InexactFloat64(),
		TotalAmount:      s.Total.InexactFloat64(),
		PromocodeApplied: s.PromocodeApplied,
		FreeShipping:     s.FreeShipping,
		Promocode:        s.Promocode,
		Degraded:         s.Degraded,
		Generation:       generation,
	}
}
