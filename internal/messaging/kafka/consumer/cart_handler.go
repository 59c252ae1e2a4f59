package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-storefront-api/internal/outbox"
)

// CartClearer is satisfied by cart.Service.
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// DeleteCartHandler empties the cart of the user who placed an order.
// Clearing an already empty cart is a no-op, so redelivery is harmless.
func DeleteCartHandler(carts CartClearer) HandlerFunc {
	return func(ctx context.Context, payload []byte) error {
		var data outbox.DeleteCartPayload
		if err := json.Unmarshal(payload, &data); err != nil {
			return fmt.Errorf("%w: %v", ErrPoisonMessage, err)
		}
		if data.UserID == "" {
			return fmt.Errorf("%w: missing user_id", ErrPoisonMessage)
		}
		return carts.Clear(ctx, data.UserID)
	}
}
