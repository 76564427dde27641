package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetOrdersQueryHandler lists orders through the order store.
// Results are stripped of owner identifiers by the store.
type GetOrdersQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(store ports.OrderStore) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		store: store,
	}
}

// Handle returns all orders matching the query's filters.
func (h *GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	return h.store.List(ctx, ports.OrderFilter{
		UserID:   query.UserID,
		Statuses: query.Statuses,
		Since:    query.Since,
	})
}
