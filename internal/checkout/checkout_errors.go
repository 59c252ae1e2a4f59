package checkout

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)

	ErrPromoCodeRequired = apperror.NewField(
		apperror.CodeInvalidInput,
		"promocode",
		"Promo code is required",
		http.StatusBadRequest,
	)

	// ErrInvalidPromoCode is a business rejection, not a transport failure.
	ErrInvalidPromoCode = apperror.NewField(
		apperror.CodeUnprocessable,
		"promocode",
		"Promo code is invalid or expired",
		http.StatusUnprocessableEntity,
	)

	ErrAddressRequired = apperror.NewField(
		apperror.CodeInvalidInput,
		"address_id",
		"Please select a shipping address",
		http.StatusBadRequest,
	)

	ErrInvalidPaymentMethod = apperror.NewField(
		apperror.CodeInvalidInput,
		"payment_method",
		"Unsupported payment method",
		http.StatusBadRequest,
	)

	ErrOnlinePaymentUnavailable = apperror.NewField(
		apperror.CodeUnprocessable,
		"payment_method",
		"Online payment is not available yet, please use cash on delivery",
		http.StatusUnprocessableEntity,
	)

	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidState,
		"Cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrPricingUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Pricing is temporarily unavailable, please try again",
		http.StatusServiceUnavailable,
	)
)
