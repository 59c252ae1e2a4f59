package address

import "time"

// ==================== REQUEST STRUCTS ====================

type CreateAddressRequest struct {
	UserID     string  `json:"-"`
	Name       string  `json:"name" validate:"required,max=100"`
	Phone      string  `json:"phone" validate:"required,max=20"`
	Line1      string  `json:"line1" validate:"required,max=255"`
	Line2      *string `json:"line2" validate:"omitempty,max=255"`
	City       string  `json:"city" validate:"required,max=100"`
	State      string  `json:"state" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=20"`
	Landmark   *string `json:"landmark" validate:"omitempty,max=255"`
	Type       string  `json:"type" validate:"required,oneof=home work other"`
	IsDefault  bool    `json:"is_default"`
}

type UpdateAddressRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Phone      string  `json:"phone" validate:"required,max=20"`
	Line1      string  `json:"line1" validate:"required,max=255"`
	Line2      *string `json:"line2" validate:"omitempty,max=255"`
	City       string  `json:"city" validate:"required,max=100"`
	State      string  `json:"state" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=20"`
	Landmark   *string `json:"landmark" validate:"omitempty,max=255"`
	Type       string  `json:"type" validate:"required,oneof=home work other"`
}

// ==================== RESPONSE STRUCTS ====================

type AddressResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Line1      string    `json:"line1"`
	Line2      *string   `json:"line2"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Landmark   *string   `json:"landmark"`
	Type       string    `json:"type"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListAddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}
