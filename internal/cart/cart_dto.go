package cart

import "github.com/shopspring/decimal"

// ==================== REQUEST STRUCTS ====================

// AddItemRequest accepts price as a JSON number or a numeric string; both
// decode into the same decimal. A missing or null price stays nil.
type AddItemRequest struct {
	ProductID      string           `json:"productId" validate:"required,uuid"`
	ProductName    string           `json:"productName" validate:"required,max=255"`
	ImageURL       string           `json:"imageUrl" validate:"omitempty,url"`
	Price          *decimal.Decimal `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compareAtPrice"`
	Qty            int32            `json:"qty" validate:"required,min=1,max=999"`
}

type UpdateQtyRequest struct {
	Qty int32 `json:"qty" validate:"required,min=1,max=999"`
}

// ==================== RESPONSE STRUCTS ====================

type CartCountResponse struct {
	Count int64 `json:"count"`
}

type CartItemResponse struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	UnitPrice      float64 `json:"unitPrice"`
	CompareAtPrice float64 `json:"compareAtPrice,omitempty"`
	Qty            int32   `json:"qty"`
	LineTotal      float64 `json:"lineTotal"`
}

type CartSummaryResponse struct {
	Subtotal     float64 `json:"subtotal"`
	TotalItems   int64   `json:"totalItems"`
	TotalSavings float64 `json:"totalSavings"`
}

type CartDetailResponse struct {
	Items   []CartItemResponse  `json:"items"`
	Summary CartSummaryResponse `json:"summary"`
}

func toDetailResponse(s *Store) CartDetailResponse {
	items := make([]CartItemResponse, 0, s.Len())
	for _, it := range s.Items() {
		items = append(items, CartItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID.String(),
			ProductName:    it.ProductName,
			ImageURL:       it.ImageURL,
			UnitPrice:      it.UnitPrice.InexactFloat64(),
			CompareAtPrice: it.CompareAtPrice.InexactFloat64(),
			Qty:            it.Quantity,
			LineTotal:      it.lineTotal().InexactFloat64(),
		})
	}

	sum := s.Summary()
	return CartDetailResponse{
		Items: items,
		Summary: CartSummaryResponse{
			Subtotal:     sum.Subtotal.InexactFloat64(),
			TotalItems:   sum.TotalItems,
			TotalSavings: sum.TotalSavings.InexactFloat64(),
		},
	}
}
