package cart

import (
	"errors"
	"net/http"

	"go-storefront-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product id",
		http.StatusBadRequest,
	)

	ErrInvalidQty = apperror.NewField(
		apperror.CodeInvalidInput,
		"qty",
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.NewField(
		apperror.CodeInvalidInput,
		"price",
		"Price is required and must not be negative",
		http.StatusBadRequest,
	)

	ErrCartNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart not found",
		http.StatusNotFound,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)

// Snapshot cache errors never reach HTTP; the service degrades to Postgres.
var (
	ErrCacheMiss         = errors.New("cart snapshot cache miss")
	ErrSnapshotConflict  = errors.New("cart snapshot changed concurrently")
	ErrMalformedSnapshot = errors.New("malformed cart snapshot")
)

// MapValidationError turns the first validator failure into a field error.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid request", http.StatusBadRequest)
	}

	fe := verrs[0]
	msg := fe.Field() + " is invalid"
	switch fe.Tag() {
	case "required":
		msg = fe.Field() + " is required"
	case "min":
		msg = fe.Field() + " must be at least " + fe.Param()
	case "max":
		msg = fe.Field() + " must be at most " + fe.Param()
	}
	return apperror.NewField(apperror.CodeInvalidInput, fe.Field(), msg, http.StatusBadRequest)
}
