package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/ports"

	"github.com/google/uuid"
)

// RegisterUserCommandHandler returns the access token for a customer identity,
// registering the identity on first sight. The access token is a freshly
// minted UUID and doubles as the userId the customer attaches to orders.
type RegisterUserCommandHandler struct {
	users ports.UserDirectory
}

// NewRegisterUserCommandHandler creates a handler for identity registration.
func NewRegisterUserCommandHandler(users ports.UserDirectory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		users: users,
	}
}

// Handle looks up the identity hash and returns the existing access token,
// or registers a new user and returns the token minted for them.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	existing, err := h.users.FindByHash(ctx, cmd.Hash())
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.AccessToken, nil
	}

	user := ports.User{
		Hash:        cmd.Hash(),
		AccessToken: uuid.NewString(),
		CreatedAt:   time.Now(),
	}
	if err := h.users.Create(ctx, user); err != nil {
		return "", err
	}

	return user.AccessToken, nil
}
