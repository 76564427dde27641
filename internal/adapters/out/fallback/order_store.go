// Package fallback wraps the remote adapters so that storage unavailability
// never reaches the application core. Each wrapper holds the remote
// implementation and the in-memory fallback behind the same port; a failed
// remote call is logged as a warning and retried against the fallback, whose
// business logic is identical. Callers therefore observe the contract's
// semantics regardless of backend availability, at the cost of the fallback
// state diverging from the remote store until the process restarts.
package fallback

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// OrderStore delegates to the remote order store and falls back to the
// in-memory store on any remote error.
type OrderStore struct {
	remote ports.OrderStore
	local  ports.OrderStore
	logger *slog.Logger
}

// NewOrderStore wraps a remote order store with an in-memory fallback.
func NewOrderStore(remote, local ports.OrderStore, logger *slog.Logger) *OrderStore {
	return &OrderStore{
		remote: remote,
		local:  local,
		logger: logger.With("component", "order_store"),
	}
}

// List delegates to the remote store, falling back on error.
func (s *OrderStore) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	orders, err := s.remote.List(ctx, filter)
	if err != nil {
		s.warn(ctx, "List", err)
		return s.local.List(ctx, filter)
	}
	return orders, nil
}

// Get delegates to the remote store, falling back on error.
func (s *OrderStore) Get(ctx context.Context, id string, withOwner bool) (*order.Order, error) {
	o, err := s.remote.Get(ctx, id, withOwner)
	if err != nil {
		s.warn(ctx, "Get", err)
		return s.local.Get(ctx, id, withOwner)
	}
	return o, nil
}

// Create delegates to the remote store; on error the order is persisted in
// the fallback store instead so the caller still receives a stored record.
func (s *OrderStore) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	created, err := s.remote.Create(ctx, o)
	if err != nil {
		s.warn(ctx, "Create", err)
		return s.local.Create(ctx, o)
	}
	return created, nil
}

// Cancel delegates to the remote store; on error the same precondition
// check and status change are applied to the fallback state, so the
// cancel-only-while-pending invariant holds on either backend.
func (s *OrderStore) Cancel(ctx context.Context, id string) (*order.Order, error) {
	cancelled, err := s.remote.Cancel(ctx, id)
	if err != nil {
		s.warn(ctx, "Cancel", err)
		return s.local.Cancel(ctx, id)
	}
	return cancelled, nil
}

// Update delegates to the remote store; on error the same merge is applied
// to the fallback state.
func (s *OrderStore) Update(ctx context.Context, id string, patch ports.OrderPatch) (*order.Order, error) {
	updated, err := s.remote.Update(ctx, id, patch)
	if err != nil {
		s.warn(ctx, "Update", err)
		return s.local.Update(ctx, id, patch)
	}
	return updated, nil
}

func (s *OrderStore) warn(ctx context.Context, op string, err error) {
	s.logger.WarnContext(ctx, "Remote order store failed, using local fallback",
		"operation", op,
		"error", err,
	)
}
