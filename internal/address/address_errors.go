package address

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

	ErrInvalidAddressID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address id",
		http.StatusBadRequest,
	)

	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)
)

func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid request", http.StatusBadRequest)
	}

	fe := verrs[0]
	msg := fe.Field() + " is invalid"
	switch fe.Tag() {
	case "required":
		msg = fe.Field() + " is required"
	case "oneof":
		msg = fe.Field() + " must be one of: " + fe.Param()
	case "max":
		msg = fe.Field() + " must be at most " + fe.Param() + " characters"
	}
	return apperror.NewField(apperror.CodeInvalidInput, fe.Field(), msg, http.StatusBadRequest)
}
