package order

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

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order id",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.NewField(
		apperror.CodeInvalidInput,
		"status",
		"Unknown order status",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrCannotCancel = apperror.New(
		apperror.CodeInvalidState,
		"Only pending orders can be cancelled",
		http.StatusConflict,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Order status cannot change that way",
		http.StatusConflict,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to place order",
		http.StatusInternalServerError,
	)
)
