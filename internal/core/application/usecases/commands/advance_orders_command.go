package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
	"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
)

// AdvanceOrdersCommand triggers one evaluation pass of the order lifecycle
// engine over all in-flight orders. It carries no parameters.
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a command to run one lifecycle tick.
func NewAdvanceOrdersCommand() AdvanceOrdersCommand {
	return AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}
