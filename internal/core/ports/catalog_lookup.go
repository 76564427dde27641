package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
)

// CatalogLookup is the read-only access contract for menu reference data.
// Lookups by id return (nil, nil) when the entry does not exist.
type CatalogLookup interface {
	// Pizzas returns the full pizza menu.
	Pizzas(ctx context.Context) ([]catalog.Pizza, error)

	// Pizza returns the pizza with the given id, or (nil, nil) when absent.
	Pizza(ctx context.Context, id string) (*catalog.Pizza, error)

	// Toppings returns all toppings, optionally restricted to a category.
	Toppings(ctx context.Context, category catalog.ToppingCategory) ([]catalog.Topping, error)

	// Topping returns the topping with the given id, or (nil, nil) when absent.
	Topping(ctx context.Context, id string) (*catalog.Topping, error)
}
