package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order ID is required")
)

// CancelOrderCommand represents a customer's request to cancel one of their
// pending orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         string
	requesterUserID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Both the order identifier and the requesting customer are required.
func NewCancelOrderCommand(orderID, requesterUserID string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequesterUserID(requesterUserID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}

// RequesterUserID returns the customer requesting the cancellation.
func (c CancelOrderCommand) RequesterUserID() string {
	return c.requesterUserID
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setRequesterUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.requesterUserID = userID
	return nil
}
