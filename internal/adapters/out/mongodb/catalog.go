package mongodb

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/catalog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Catalog is the remote implementation of ports.CatalogLookup backed by the
// pizzas and toppings collections.
type Catalog struct {
	pizzas   *mongo.Collection
	toppings *mongo.Collection
}

// NewCatalog creates a catalog lookup over the given client's menu collections.
func NewCatalog(client *mongo.Client) *Catalog {
	db := client.Database(pizzaDatabase)
	return &Catalog{
		pizzas:   db.Collection(pizzasCollection),
		toppings: db.Collection(toppingsCollection),
	}
}

// SeedIfEmpty populates the menu collections with the given reference data
// when they hold no documents yet. Run once at startup.
func (c *Catalog) SeedIfEmpty(ctx context.Context, pizzas []catalog.Pizza, toppings []catalog.Topping) error {
	ctx, cancel := callContext(ctx)
	defer cancel()

	count, err := c.pizzas.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		docs := make([]any, 0, len(pizzas))
		for _, p := range pizzas {
			docs = append(docs, pizzaFromDomain(p))
		}
		if _, err := c.pizzas.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	count, err = c.toppings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		docs := make([]any, 0, len(toppings))
		for _, t := range toppings {
			docs = append(docs, toppingFromDomain(t))
		}
		if _, err := c.toppings.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	return nil
}

// Pizzas returns the full pizza menu.
func (c *Catalog) Pizzas(ctx context.Context) ([]catalog.Pizza, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	cursor, err := c.pizzas.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dtos []pizzaDTO
	if err := cursor.All(ctx, &dtos); err != nil {
		return nil, err
	}

	pizzas := make([]catalog.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		pizzas = append(pizzas, pizzaToDomain(dto))
	}
	return pizzas, nil
}

// Pizza returns the pizza with the given id, or (nil, nil) when absent.
func (c *Catalog) Pizza(ctx context.Context, id string) (*catalog.Pizza, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	var dto pizzaDTO
	err := c.pizzas.FindOne(ctx, bson.M{"_id": id}).Decode(&dto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pizza := pizzaToDomain(dto)
	return &pizza, nil
}

// Toppings returns all toppings, optionally restricted to a category.
func (c *Catalog) Toppings(ctx context.Context, category catalog.ToppingCategory) ([]catalog.Topping, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	query := bson.M{}
	if category != "" {
		query["category"] = string(category)
	}

	cursor, err := c.toppings.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dtos []toppingDTO
	if err := cursor.All(ctx, &dtos); err != nil {
		return nil, err
	}

	toppings := make([]catalog.Topping, 0, len(dtos))
	for _, dto := range dtos {
		toppings = append(toppings, toppingToDomain(dto))
	}
	return toppings, nil
}

// Topping returns the topping with the given id, or (nil, nil) when absent.
func (c *Catalog) Topping(ctx context.Context, id string) (*catalog.Topping, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	var dto toppingDTO
	err := c.toppings.FindOne(ctx, bson.M{"_id": id}).Decode(&dto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	topping := toppingToDomain(dto)
	return &topping, nil
}
