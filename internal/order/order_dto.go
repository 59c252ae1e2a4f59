package order

import (
	"encoding/json"
	"time"
)

const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"

	PaymentStatusUnpaid = "UNPAID"
)

// ==================== REQUEST STRUCTS ====================

// CheckoutRequest carries the selection explicitly so a missing address is
// rejected before anything is read.
type CheckoutRequest struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note" binding:"max=500"`
}

type UpdateStatusAdminRequest struct {
	Status string `json:"status" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	UserID        string              `json:"userId,omitempty"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	SubtotalPrice float64             `json:"subtotalPrice"`
	DiscountPrice float64             `json:"discountPrice"`
	ShippingPrice float64             `json:"shippingPrice"`
	TaxPrice      float64             `json:"taxPrice"`
	TotalPrice    float64             `json:"totalPrice"`
	Promocode     *string             `json:"promocode,omitempty"`
	Note          *string             `json:"note,omitempty"`
	Address       json.RawMessage     `json:"address,omitempty"`
	PlacedAt      time.Time           `json:"placedAt"`
	Items         []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	NameSnapshot string  `json:"nameSnapshot"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}
