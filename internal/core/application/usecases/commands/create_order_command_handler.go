package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// Business rejections returned by CreateOrderCommandHandler. Each check in
// the validation sequence fails with its own sentinel so callers can tell
// the customer exactly what to fix.
var (
	ErrUserNotRegistered   = errors.New("userId is not registered")
	ErrOrderHasNoItems     = errors.New("order must contain at least one pizza")
	ErrQuantityIsInvalid   = errors.New("quantity must be a positive integer")
	ErrOrderTooLarge       = errors.New("order cannot exceed 50 pizzas in total")
	ErrTooManyActiveOrders = errors.New("too many active orders: limit is 5 per user")
	ErrPizzaNotFound       = errors.New("pizza not found")
	ErrToppingNotFound     = errors.New("topping not found")
)

// Creation-time business limits.
const (
	// maxTotalQuantity caps the total number of pizzas in one order.
	maxTotalQuantity = 50

	// maxActiveOrders caps a customer's concurrently active orders
	// (status pending or in-preparation).
	maxActiveOrders = 5
)

// CreateOrderCommandHandler enforces the order-creation business rules and
// persists accepted orders. The checks run in a fixed sequence, cheapest
// first, so structural problems are rejected before any catalog lookups:
//
//  1. the customer is registered
//  2. the order has items, each quantity is a positive integer, and the
//     total quantity does not exceed 50
//  3. the customer has fewer than 5 active orders
//  4. every referenced pizza and topping exists in the catalog
//
// Accepted orders are priced from the catalog and given a completion
// estimate before being handed to the store.
type CreateOrderCommandHandler struct {
	store   ports.OrderStore
	catalog ports.CatalogLookup
	users   ports.UserDirectory
	rnd     services.Rand
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The randomness source drives the completion-time estimate.
func NewCreateOrderCommandHandler(
	store ports.OrderStore,
	catalog ports.CatalogLookup,
	users ports.UserDirectory,
	rnd services.Rand,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		store:   store,
		catalog: catalog,
		users:   users,
		rnd:     rnd,
	}
}

// Handle validates the request, prices it, and persists the new order.
// Returns the stored order (with its assigned identifier) or the first
// business rejection encountered.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	registered, err := h.users.Exists(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, ErrUserNotRegistered
	}

	requested := cmd.Items()
	if len(requested) == 0 {
		return nil, ErrOrderHasNoItems
	}

	totalQuantity := 0
	for _, item := range requested {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: pizzaId %s", ErrQuantityIsInvalid, item.PizzaID)
		}
		totalQuantity += item.Quantity
	}
	if totalQuantity > maxTotalQuantity {
		return nil, ErrOrderTooLarge
	}

	active, err := h.store.List(ctx, ports.OrderFilter{
		UserID:   cmd.UserID(),
		Statuses: []order.Status{order.Pending, order.InPreparation},
	})
	if err != nil {
		return nil, err
	}
	if len(active) >= maxActiveOrders {
		return nil, ErrTooManyActiveOrders
	}

	items := make([]order.Item, 0, len(requested))
	totalPrice := 0.0
	for _, item := range requested {
		pizza, pizzaErr := h.catalog.Pizza(ctx, item.PizzaID)
		if pizzaErr != nil {
			return nil, pizzaErr
		}
		if pizza == nil {
			return nil, fmt.Errorf("%w: %s", ErrPizzaNotFound, item.PizzaID)
		}

		extraToppingsPrice := 0.0
		for _, toppingID := range item.ExtraToppingIDs {
			topping, toppingErr := h.catalog.Topping(ctx, toppingID)
			if toppingErr != nil {
				return nil, toppingErr
			}
			if topping == nil {
				return nil, fmt.Errorf("%w: %s", ErrToppingNotFound, toppingID)
			}
			extraToppingsPrice += topping.Price
		}

		orderItem, itemErr := order.NewItem(item.PizzaID, item.Quantity, item.ExtraToppingIDs)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, orderItem)
		totalPrice += (pizza.Price + extraToppingsPrice) * float64(item.Quantity)
	}

	now := time.Now()
	estimatedCompletionAt := services.EstimateCompletion(h.rnd, now, totalQuantity)

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.Nickname(), items, totalPrice, now, estimatedCompletionAt)
	if err != nil {
		return nil, err
	}

	return h.store.Create(ctx, newOrder)
}
