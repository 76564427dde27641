package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// OrderFilter narrows the result set of OrderStore.List.
// Provided criteria are combined with logical AND; zero values mean
// "no constraint".
type OrderFilter struct {
	// UserID restricts results to orders owned by this customer.
	UserID string

	// Statuses restricts results to orders in any of these statuses.
	Statuses []order.Status

	// Since restricts results to orders created within this duration
	// of the current time.
	Since time.Duration
}

// OrderPatch is a partial update merged into an existing order record.
// The merge is blind (last write wins); there is no compare-and-swap.
type OrderPatch struct {
	// Status is the new lifecycle status.
	Status order.Status

	// ReadyAt, when non-nil, records when the order became ready.
	ReadyAt *time.Time

	// CompletedAt, when non-nil, records when the order was picked up.
	// When Status is Completed and the record has no completion time yet,
	// the store fills it with the current time as a merge side effect.
	CompletedAt *time.Time
}

// OrderStore is the persistence contract for order records.
//
// Two implementations exist behind this contract: a remote document-database
// store and an in-process fallback store. A wrapping implementation delegates
// each failed remote call to the fallback so that callers never observe
// storage unavailability (see the fallback adapter package).
//
// Absent records are a normal negative result: methods return (nil, nil)
// rather than an error when the requested order does not exist or a
// precondition does not hold.
//
// Orders returned from List and Create, and from Get without withOwner,
// are stripped of the owner identifier.
type OrderStore interface {
	// List returns orders matching the filter.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Get returns the order with the given id, or (nil, nil) when absent.
	// The owner identifier is retained only when withOwner is set.
	Get(ctx context.Context, id string, withOwner bool) (*order.Order, error)

	// Create assigns a unique, monotonically assignable identifier to the
	// order, persists it, and returns the stored record.
	Create(ctx context.Context, o *order.Order) (*order.Order, error)

	// Cancel atomically reads the order and sets its status to Cancelled,
	// but only while the current status is Pending. In every other case it
	// is a no-op returning (nil, nil). This is the only caller-initiated
	// status change outside the lifecycle engine.
	Cancel(ctx context.Context, id string) (*order.Order, error)

	// Update merges the patch into the existing record and returns the
	// merged result, or (nil, nil) when the order does not exist.
	Update(ctx context.Context, id string, patch OrderPatch) (*order.Order, error)
}
