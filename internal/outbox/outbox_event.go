package outbox

import (
	"encoding/json"

	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

const (
	AggregateOrder = "ORDER"

	EventDeleteCart = "DELETE_CART"

	HeaderEventType     = "event_type"
	HeaderAggregateType = "aggregate_type"
)

// DeleteCartPayload asks the cart consumer to empty a user's cart once their
// order is committed.
type DeleteCartPayload struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
}

func NewDeleteCartEvent(orderID uuid.UUID, userID string) (dbgen.CreateOutboxEventParams, error) {
	payload, err := json.Marshal(DeleteCartPayload{
		UserID:  userID,
		OrderID: orderID.String(),
	})
	if err != nil {
		return dbgen.CreateOutboxEventParams{}, err
	}

	return dbgen.CreateOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: AggregateOrder,
		AggregateID:   orderID,
		EventType:     EventDeleteCart,
		Payload:       payload,
	}, nil
}
