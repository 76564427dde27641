package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Item is a value object representing one line of an order: a pizza,
// how many of it, and which extra toppings to add to each one.
//
// Item is immutable after construction and can only be created through
// NewItem, which enforces that the pizza reference is present and the
// quantity is a positive integer.
type Item struct {
	// pizzaID references a pizza in the catalog
	pizzaID string

	// quantity is how many of this pizza are ordered (must be positive)
	quantity int

	// extraToppingIDs reference extra toppings applied to each pizza
	extraToppingIDs []string
}

// NewItem creates an order line with validation.
//
// Parameters:
//   - pizzaID: catalog identifier of the pizza (must not be empty)
//   - quantity: number of pizzas (must be a positive integer)
//   - extraToppingIDs: optional catalog identifiers of extra toppings
//
// Returns a validation error if the pizza reference is missing or the
// quantity is not positive.
func NewItem(pizzaID string, quantity int, extraToppingIDs []string) (Item, error) {
	if pizzaID == "" {
		return Item{}, errs.NewValueIsRequiredError("pizzaId")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive integer", quantity),
		)
	}

	return Item{
		pizzaID:         pizzaID,
		quantity:        quantity,
		extraToppingIDs: append([]string(nil), extraToppingIDs...),
	}, nil
}

// PizzaID returns the catalog identifier of the ordered pizza.
func (i Item) PizzaID() string {
	return i.pizzaID
}

// Quantity returns how many of this pizza are ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// ExtraToppingIDs returns a copy of the extra topping identifiers.
func (i Item) ExtraToppingIDs() []string {
	return append([]string(nil), i.extraToppingIDs...)
}
