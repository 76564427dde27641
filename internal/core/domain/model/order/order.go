package order

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries an identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the fulfillment lifecycle from creation through preparation to completion.
//
// Order follows these invariants:
//   - Must have at least one item
//   - Status transitions follow the state machine defined on Status
//   - readyAt is set exactly once, when the order becomes Ready
//   - completedAt is set exactly once, when the order becomes Completed
//   - id, userID, items, createdAt, estimatedCompletionAt and totalPrice are
//     immutable after creation
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Only the persistence layer assigns
// identifiers, via AssignID on a freshly created order.
type Order struct {
	// id is the store-assigned unique identifier (empty until persisted)
	id string

	// userID identifies the customer who placed the order.
	// It is stripped on public read paths.
	userID string

	// nickname is an optional display name attached by the customer
	nickname string

	// items are the order lines (at least one)
	items []Item

	// status is the current state in the fulfillment lifecycle
	status Status

	// createdAt is when the order was placed
	createdAt time.Time

	// estimatedCompletionAt is the completion estimate fixed at creation
	estimatedCompletionAt time.Time

	// readyAt is when the order became ready for pickup (nil before that)
	readyAt *time.Time

	// completedAt is when the order was picked up (nil before that)
	completedAt *time.Time

	// totalPrice is the full price computed at creation
	totalPrice float64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status, without an identifier.
// The identifier is assigned by the order store when the order is persisted.
//
// Parameters:
//   - userID: the owning customer (required)
//   - nickname: optional display name
//   - items: the order lines (at least one required)
//   - totalPrice: full price computed by the validator (must not be negative)
//   - createdAt: creation timestamp
//   - estimatedCompletionAt: completion estimate fixed at creation
//
// Returns a validation error if any parameter violates an invariant.
func NewOrder(
	userID string,
	nickname string,
	items []Item,
	totalPrice float64,
	createdAt time.Time,
	estimatedCompletionAt time.Time,
) (*Order, error) {
	o := &Order{
		nickname:              nickname,
		status:                Pending,
		createdAt:             createdAt,
		estimatedCompletionAt: estimatedCompletionAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItems(items),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and the already-assigned identifier, and it
// tolerates a missing userID so that records stripped for public read
// paths can still be represented.
func RestoreOrder(
	id string,
	userID string,
	nickname string,
	items []Item,
	status Status,
	totalPrice float64,
	createdAt time.Time,
	estimatedCompletionAt time.Time,
	readyAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                    id,
		userID:                userID,
		nickname:              nickname,
		status:                status,
		createdAt:             createdAt,
		estimatedCompletionAt: estimatedCompletionAt,
		readyAt:               readyAt,
		completedAt:           completedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setItems(items),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != "" && o.id == other.id
}

// ID returns the order's unique identifier, or the empty string for an
// order that has not been persisted yet.
func (o *Order) ID() string {
	return o.id
}

// UserID returns the owning customer's identifier.
// Empty on records stripped for public read paths.
func (o *Order) UserID() string {
	return o.userID
}

// Nickname returns the optional display name attached to the order.
func (o *Order) Nickname() string {
	return o.nickname
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedCompletionAt returns the completion estimate fixed at creation.
func (o *Order) EstimatedCompletionAt() time.Time {
	return o.estimatedCompletionAt
}

// ReadyAt returns when the order became ready for pickup, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// CompletedAt returns when the order was picked up, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// TotalPrice returns the full price computed at creation.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// TotalQuantity returns the total number of pizzas across all order lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// AssignID sets the store-generated identifier on a freshly created order.
// Returns ErrOrderIDAlreadyAssigned if the order already has one.
func (o *Order) AssignID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	if o.id != "" {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// StartPreparation moves the order from Pending to InPreparation.
// Returns an error if the order is not Pending.
func (o *Order) StartPreparation() error {
	newStatus, err := o.status.StartPreparation()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkReady moves the order from InPreparation to Ready and records the
// ready timestamp. The timestamp is set exactly once.
func (o *Order) MarkReady(at time.Time) error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	o.status = newStatus
	if o.readyAt == nil {
		o.readyAt = &at
	}
	return nil
}

// Complete moves the order from Ready to Completed and records the
// completion timestamp. The timestamp is set exactly once.
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	if o.completedAt == nil {
		o.completedAt = &at
	}
	return nil
}

// Cancel moves the order from Pending to Cancelled.
// Returns an error if preparation has already started.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Anonymized returns a copy of the order with the owner identifier removed.
// Used by stores before returning records on public read paths.
func (o *Order) Anonymized() *Order {
	clone := *o
	clone.userID = ""
	clone.items = append([]Item(nil), o.items...)
	return &clone
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	o.totalPrice = totalPrice
	return nil
}
