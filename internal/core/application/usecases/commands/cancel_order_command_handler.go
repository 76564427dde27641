package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

var (
	// ErrOrderNotFound is returned when the order does not exist or can no
	// longer be cancelled. The store treats a cancel on a non-pending order
	// as a no-op, which surfaces to the customer the same way as a missing
	// order does.
	ErrOrderNotFound = errors.New("order not found or cannot be cancelled")

	// ErrNotOrderOwner is returned when the requester does not own the order.
	ErrNotOrderOwner = errors.New("requester is not authorized to cancel this order")
)

// CancelOrderCommandHandler processes order cancellation requests.
// A cancellation succeeds only while the order is still Pending; the owner
// check runs first so a foreign order is rejected rather than reported
// missing.
type CancelOrderCommandHandler struct {
	store ports.OrderStore
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(store ports.OrderStore) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		store: store,
	}
}

// Handle cancels the order if the requester owns it and it is still Pending.
// Returns the cancelled order, ErrNotOrderOwner for a foreign order, or
// ErrOrderNotFound when the order is absent or past cancellation.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.store.Get(ctx, cmd.OrderID(), true)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.UserID() != cmd.RequesterUserID() {
		return nil, ErrNotOrderOwner
	}

	cancelled, err := h.store.Cancel(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if cancelled == nil {
		return nil, ErrOrderNotFound
	}

	return cancelled, nil
}
