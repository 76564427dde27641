package mongodb

import (
	"context"
	"errors"

	"pizzeria/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserDirectory is the remote implementation of ports.UserDirectory backed
// by the users collection shared with the registration service.
type UserDirectory struct {
	coll *mongo.Collection
}

// NewUserDirectory creates a user directory over the given client's users collection.
func NewUserDirectory(client *mongo.Client) *UserDirectory {
	return &UserDirectory{
		coll: client.Database(userDatabase).Collection(usersCollection),
	}
}

// Exists reports whether a user is registered under the given userId.
// The userId customers attach to orders is their access token.
func (d *UserDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	count, err := d.coll.CountDocuments(ctx, bson.M{"accessToken": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByHash returns the user registered under the given identity hash,
// or (nil, nil) when no such user exists.
func (d *UserDirectory) FindByHash(ctx context.Context, hash string) (*ports.User, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	var dto userDTO
	err := d.coll.FindOne(ctx, bson.M{"hash": hash}).Decode(&dto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := userToDomain(dto)
	return &user, nil
}

// Create registers a new user document.
func (d *UserDirectory) Create(ctx context.Context, user ports.User) error {
	ctx, cancel := callContext(ctx)
	defer cancel()

	_, err := d.coll.InsertOne(ctx, userDTO{
		Hash:        user.Hash,
		AccessToken: user.AccessToken,
		CreatedAt:   user.CreatedAt,
	})
	return err
}
