package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrIdentityHashIsRequired = errors.New("identity hash is required")
)

// RegisterUserCommand represents a request to look up or register a customer
// by their identity hash. The hash is computed by the authentication layer
// from the provider identity; this core never sees raw identities.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	hash string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a customer identity.
func NewRegisterUserCommand(hash string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setHash(hash); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Hash returns the identity hash to register.
func (c RegisterUserCommand) Hash() string {
	return c.hash
}

func (c *RegisterUserCommand) setHash(hash string) error {
	if hash == "" {
		return ErrIdentityHashIsRequired
	}

	c.hash = hash
	return nil
}
