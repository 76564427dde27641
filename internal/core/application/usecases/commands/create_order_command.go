package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("userId is required")
)

// ItemRequest is one requested order line as submitted by the customer.
// It is deliberately unvalidated: the create-order handler checks the
// business rules in their defined sequence so each rejection carries its
// own distinct reason.
type ItemRequest struct {
	PizzaID         string
	Quantity        int
	ExtraToppingIDs []string
}

// CreateOrderCommand represents a customer's request to place an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, "margherita night", []ItemRequest{
//	    {PizzaID: "margherita", Quantity: 2, ExtraToppingIDs: []string{"extra-mozzarella"}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID   string
	nickname string
	items    []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Only the presence of the userId is checked here; the remaining business
// rules run in the handler in their defined order.
func NewCreateOrderCommand(userID, nickname string, items []ItemRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		nickname: nickname,
		items:    append([]ItemRequest(nil), items...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// Nickname returns the optional display name for the order.
func (c CreateOrderCommand) Nickname() string {
	return c.nickname
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemRequest {
	return append([]ItemRequest(nil), c.items...)
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}
