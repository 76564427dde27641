package fallback

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/ports"
)

// Catalog delegates to the remote catalog and falls back to the embedded
// local menu on any remote error.
type Catalog struct {
	remote ports.CatalogLookup
	local  ports.CatalogLookup
	logger *slog.Logger
}

// NewCatalog wraps a remote catalog lookup with the local embedded menu.
func NewCatalog(remote, local ports.CatalogLookup, logger *slog.Logger) *Catalog {
	return &Catalog{
		remote: remote,
		local:  local,
		logger: logger.With("component", "catalog"),
	}
}

// Pizzas delegates to the remote catalog, falling back on error.
func (c *Catalog) Pizzas(ctx context.Context) ([]catalog.Pizza, error) {
	pizzas, err := c.remote.Pizzas(ctx)
	if err != nil {
		c.warn(ctx, "Pizzas", err)
		return c.local.Pizzas(ctx)
	}
	return pizzas, nil
}

// Pizza delegates to the remote catalog, falling back on error.
func (c *Catalog) Pizza(ctx context.Context, id string) (*catalog.Pizza, error) {
	pizza, err := c.remote.Pizza(ctx, id)
	if err != nil {
		c.warn(ctx, "Pizza", err)
		return c.local.Pizza(ctx, id)
	}
	return pizza, nil
}

// Toppings delegates to the remote catalog, falling back on error.
func (c *Catalog) Toppings(ctx context.Context, category catalog.ToppingCategory) ([]catalog.Topping, error) {
	toppings, err := c.remote.Toppings(ctx, category)
	if err != nil {
		c.warn(ctx, "Toppings", err)
		return c.local.Toppings(ctx, category)
	}
	return toppings, nil
}

// Topping delegates to the remote catalog, falling back on error.
func (c *Catalog) Topping(ctx context.Context, id string) (*catalog.Topping, error) {
	topping, err := c.remote.Topping(ctx, id)
	if err != nil {
		c.warn(ctx, "Topping", err)
		return c.local.Topping(ctx, id)
	}
	return topping, nil
}

func (c *Catalog) warn(ctx context.Context, op string, err error) {
	c.logger.WarnContext(ctx, "Remote catalog failed, using local fallback",
		"operation", op,
		"error", err,
	)
}
