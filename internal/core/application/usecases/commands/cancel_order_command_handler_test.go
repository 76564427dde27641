package commands_test

import (
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownedOrder(t *testing.T, userID string, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem("margherita", 1, nil)
	require.NoError(t, err)

	createdAt := time.Now()
	o, err := order.RestoreOrder(
		"17410032000000", userID, "", []order.Item{item},
		status, 8.5, createdAt, createdAt.Add(4*time.Minute), nil, nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand("17410032000000", "user-1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "17410032000000", cmd.OrderID())
		assert.Equal(t, "user-1", cmd.RequesterUserID())
	})

	t.Run("should fail without order identifier", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand("", "user-1")

		assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	})

	t.Run("should fail without requester", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand("17410032000000", "")

		assert.ErrorIs(t, err, commands.ErrUserIDIsRequired)
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should cancel own pending order", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("Get", ctx, "17410032000000", true).
			Return(ownedOrder(t, "user-1", order.Pending), nil).Once()
		store.On("Cancel", ctx, "17410032000000").
			Return(ownedOrder(t, "", order.Cancelled), nil).Once()

		cmd, err := commands.NewCancelOrderCommand("17410032000000", "user-1")
		require.NoError(t, err)

		h := commands.NewCancelOrderCommandHandler(store)
		cancelled, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, cancelled)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		store.AssertExpectations(t)
	})

	t.Run("should refuse to cancel a foreign order", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("Get", ctx, "17410032000000", true).
			Return(ownedOrder(t, "someone-else", order.Pending), nil).Once()

		cmd, err := commands.NewCancelOrderCommand("17410032000000", "user-1")
		require.NoError(t, err)

		h := commands.NewCancelOrderCommandHandler(store)
		_, err = h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrNotOrderOwner)
		store.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})

	t.Run("should report missing order as not found", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("Get", ctx, "999", true).Return(nil, nil).Once()
		store.On("Cancel", ctx, "999").Return(nil, nil).Once()

		cmd, err := commands.NewCancelOrderCommand("999", "user-1")
		require.NoError(t, err)

		h := commands.NewCancelOrderCommandHandler(store)
		_, err = h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("should report an order past cancellation as not found", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("Get", ctx, "17410032000000", true).
			Return(ownedOrder(t, "user-1", order.InPreparation), nil).Once()
		store.On("Cancel", ctx, "17410032000000").Return(nil, nil).Once()

		cmd, err := commands.NewCancelOrderCommand("17410032000000", "user-1")
		require.NoError(t, err)

		h := commands.NewCancelOrderCommandHandler(store)
		_, err = h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		store := new(MockOrderStore)
		storeErr := errors.New("connection reset")
		store.On("Get", ctx, "17410032000000", true).Return(nil, storeErr).Once()

		cmd, err := commands.NewCancelOrderCommand("17410032000000", "user-1")
		require.NoError(t, err)

		h := commands.NewCancelOrderCommandHandler(store)
		_, err = h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		store := new(MockOrderStore)

		h := commands.NewCancelOrderCommandHandler(store)
		_, err := h.Handle(ctx, commands.CancelOrderCommand{})

		assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
