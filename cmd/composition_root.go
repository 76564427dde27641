package cmd

import (
	"context"
	"log/slog"

	"pizzeria/internal/adapters/out/fallback"
	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/adapters/out/mongodb"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers.
//
// Storage selection happens once at construction: when the document database
// is reachable, every port is served by the remote adapter wrapped in a
// fallback that degrades to the in-memory adapter on call failures. When the
// database is unreachable (or no URI is configured), the in-memory adapters
// serve alone and the service keeps working with process-local state.
type CompositionRoot struct {
	orderStore    ports.OrderStore
	catalogLookup ports.CatalogLookup
	userDirectory ports.UserDirectory

	rnd    services.Rand
	logger *slog.Logger
}

func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (CompositionRoot, error) {
	localCatalog, err := memory.NewCatalog()
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		orderStore:    memory.NewOrderStore(),
		catalogLookup: localCatalog,
		userDirectory: memory.NewUserDirectory(),
		rnd:           services.SystemRand(),
		logger:        logger,
	}

	if config.MongoURI == "" {
		logger.WarnContext(ctx, "No document database configured, using in-memory storage only")
		return root, nil
	}

	client, err := mongodb.Connect(ctx, config.MongoURI)
	if err != nil {
		logger.WarnContext(ctx, "Document database unreachable, using in-memory storage only", "error", err)
		return root, nil
	}

	remoteCatalog := mongodb.NewCatalog(client)
	root.seedCatalog(ctx, remoteCatalog, localCatalog)

	root.orderStore = fallback.NewOrderStore(mongodb.NewOrderStore(client), root.orderStore, logger)
	root.catalogLookup = fallback.NewCatalog(remoteCatalog, root.catalogLookup, logger)
	root.userDirectory = fallback.NewUserDirectory(mongodb.NewUserDirectory(client), root.userDirectory, logger)

	logger.InfoContext(ctx, "Connected to document database", "uri", config.MongoURI)
	return root, nil
}

// seedCatalog pushes the bundled menu into the remote catalog collections
// when they are empty. Seeding failures are not fatal: reads fall back to the
// bundled data anyway.
func (c *CompositionRoot) seedCatalog(ctx context.Context, remote *mongodb.Catalog, local *memory.Catalog) {
	pizzas, err := local.Pizzas(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to load bundled pizzas for seeding", "error", err)
		return
	}

	toppings, err := local.Toppings(ctx, "")
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to load bundled toppings for seeding", "error", err)
		return
	}

	if err := remote.SeedIfEmpty(ctx, pizzas, toppings); err != nil {
		c.logger.WarnContext(ctx, "Failed to seed remote catalog", "error", err)
	}
}

func (c *CompositionRoot) OrderStore() ports.OrderStore {
	return c.orderStore
}

func (c *CompositionRoot) CatalogLookup() ports.CatalogLookup {
	return c.catalogLookup
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderStore, c.catalogLookup, c.userDirectory, c.rnd)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userDirectory)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.orderStore, services.NewProgressionPolicy(c.rnd), c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderStore)
}
