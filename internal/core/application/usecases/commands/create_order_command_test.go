package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	items := []commands.ItemRequest{{PizzaID: "margherita", Quantity: 2}}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("user-1", "margherita night", items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "user-1", cmd.UserID())
		assert.Equal(t, "margherita night", cmd.Nickname())
		assert.Equal(t, items, cmd.Items())
	})

	t.Run("should fail without user", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "", items)

		assert.ErrorIs(t, err, commands.ErrUserIDIsRequired)
	})

	t.Run("should accept empty items and leave the rejection to the handler", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("user-1", "", nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Items())
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
