package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database and collection names. Orders and the menu live in the pizza
// database; registered users live in their own database, shared with the
// registration service.
const (
	pizzaDatabase      = "pizzaDB"
	ordersCollection   = "orders"
	pizzasCollection   = "pizzas"
	toppingsCollection = "toppings"

	userDatabase    = "userDB"
	usersCollection = "users"
)

// connectTimeout bounds the initial connection attempt at process start.
// callTimeout bounds every individual operation so a slow backend degrades
// into fallback behavior instead of blocking callers.
const (
	connectTimeout = 5 * time.Second
	callTimeout    = 5 * time.Second
)

// Connect establishes a client connection and verifies it with a ping.
// Callers treat a returned error as "remote unavailable" and fall back to
// the in-memory adapters.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return client, nil
}

// callContext derives a per-operation context with the standard timeout.
func callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, callTimeout)
}
