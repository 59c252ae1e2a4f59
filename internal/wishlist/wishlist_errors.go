package wishlist

import (
	"errors"
	"net/http"

	"go-storefront-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.NewField(
		apperror.CodeInvalidInput,
		"price",
		"Price must not be negative",
		http.StatusBadRequest,
	)

	ErrItemAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Item already in wishlist",
		http.StatusConflict,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in wishlist",
		http.StatusNotFound,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process wishlist operation",
		http.StatusInternalServerError,
	)
)

func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid request", http.StatusBadRequest)
	}

	fe := verrs[0]
	msg := fe.Field() + " is invalid"
	if fe.Tag() == "required" {
		msg = fe.Field() + " is required"
	}
	return apperror.NewField(apperror.CodeInvalidInput, fe.Field(), msg, http.StatusBadRequest)
}
