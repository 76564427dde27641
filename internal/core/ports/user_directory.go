package ports

import (
	"context"
	"time"
)

// User is a registered customer record. The access token doubles as the
// userId customers attach to their orders.
type User struct {
	Hash        string
	AccessToken string
	CreatedAt   time.Time
}

// UserDirectory is the contract for the user registration collection.
type UserDirectory interface {
	// Exists reports whether the given userId belongs to a registered user.
	Exists(ctx context.Context, userID string) (bool, error)

	// FindByHash returns the user registered under the given identity hash,
	// or (nil, nil) when no such user exists.
	FindByHash(ctx context.Context, hash string) (*User, error)

	// Create registers a new user under the given identity hash.
	Create(ctx context.Context, user User) error
}
