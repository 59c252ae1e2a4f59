package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
)

// ==================== REQUEST STRUCTS ====================

// AddItemRequest carries the product snapshot shown on the product page; the
// product id comes from the path.
type AddItemRequest struct {
	ProductName string           `json:"productName" validate:"required,max=255"`
	ImageURL    string           `json:"imageUrl" validate:"omitempty,url"`
	Price       *decimal.Decimal `json:"price"`
}

// ==================== RESPONSE STRUCTS ====================

type WishlistItemResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
}

type WishlistResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Items     []WishlistItemResponse `json:"items"`
	ItemCount int                    `json:"itemCount"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}
