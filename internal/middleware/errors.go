package middleware

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"User not authenticated",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this resource",
		http.StatusForbidden,
	)

	ErrTooManyRequests = apperror.New(
		apperror.CodeTooManyRequests,
		"Too many requests, slow down",
		http.StatusTooManyRequests,
	)

	ErrIdempotencyKeyRequired = apperror.NewField(
		apperror.CodeInvalidInput,
		"Idempotency-Key",
		"Idempotency-Key header is required",
		http.StatusBadRequest,
	)

	ErrRequestInProgress = apperror.New(
		apperror.CodeConflict,
		"A request with this idempotency key is already in progress",
		http.StatusConflict,
	)
)
