package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetOrderQueryHandler fetches a single order through the order store.
// The owner identifier is stripped; absence is reported as (nil, nil).
type GetOrderQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(store ports.OrderStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		store: store,
	}
}

// Handle returns the requested order, or (nil, nil) when it does not exist.
func (h *GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.store.Get(ctx, query.OrderID(), false)
}
