package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"pizzeria/internal/core/domain/model/catalog"
)

//go:embed data/pizzas.json
var pizzasData []byte

//go:embed data/toppings.json
var toppingsData []byte

// Catalog serves the menu reference data from files embedded in the binary.
// It is both the local fallback for the remote catalog collections and the
// seed source used to populate them when they are empty.
type Catalog struct {
	pizzas   []catalog.Pizza
	toppings []catalog.Topping
}

// NewCatalog loads the embedded menu data.
func NewCatalog() (*Catalog, error) {
	var pizzas []catalog.Pizza
	if err := json.Unmarshal(pizzasData, &pizzas); err != nil {
		return nil, fmt.Errorf("load pizzas data: %w", err)
	}

	var toppings []catalog.Topping
	if err := json.Unmarshal(toppingsData, &toppings); err != nil {
		return nil, fmt.Errorf("load toppings data: %w", err)
	}

	return &Catalog{
		pizzas:   pizzas,
		toppings: toppings,
	}, nil
}

// Pizzas returns the full pizza menu.
func (c *Catalog) Pizzas(_ context.Context) ([]catalog.Pizza, error) {
	return append([]catalog.Pizza(nil), c.pizzas...), nil
}

// Pizza returns the pizza with the given id, or (nil, nil) when absent.
func (c *Catalog) Pizza(_ context.Context, id string) (*catalog.Pizza, error) {
	for _, p := range c.pizzas {
		if p.ID == id {
			pizza := p
			return &pizza, nil
		}
	}
	return nil, nil
}

// Toppings returns all toppings, optionally restricted to a category.
func (c *Catalog) Toppings(_ context.Context, category catalog.ToppingCategory) ([]catalog.Topping, error) {
	if category == "" {
		return append([]catalog.Topping(nil), c.toppings...), nil
	}

	matches := make([]catalog.Topping, 0)
	for _, t := range c.toppings {
		if t.Category == category {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// Topping returns the topping with the given id, or (nil, nil) when absent.
func (c *Catalog) Topping(_ context.Context, id string) (*catalog.Topping, error) {
	for _, t := range c.toppings {
		if t.ID == id {
			topping := t
			return &topping, nil
		}
	}
	return nil, nil
}
