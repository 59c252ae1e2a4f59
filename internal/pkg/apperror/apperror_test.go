package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-storefront-api/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("nil_error", func(t *testing.T) {
		res := apperror.ToHTTP(nil)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("wrapped_app_error", func(t *testing.T) {
		base := apperror.New(apperror.CodeNotFound, "cart not found", http.StatusNotFound)
		err := fmt.Errorf("load cart: %w", base)

		res := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, apperror.CodeNotFound, res.Code)
		assert.Nil(t, res.Details)
	})

	t.Run("field_error_has_details", func(t *testing.T) {
		err := apperror.NewField(apperror.CodeUnprocessable, "promocode", "invalid promo code", http.StatusUnprocessableEntity)

		res := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
		assert.Equal(t, map[string]string{"promocode": "invalid promo code"}, res.Details)
	})

	t.Run("plain_error_is_internal", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
	})
}

func TestAppError_Is(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "already exists", http.StatusConflict)
	wrapped := apperror.Wrap(errors.New("duplicate key"), apperror.CodeConflict, "already exists", http.StatusConflict)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.Contains(t, wrapped.Error(), "duplicate key")
	assert.False(t, errors.Is(sentinel, apperror.New(apperror.CodeNotFound, "x", http.StatusNotFound)))
}
