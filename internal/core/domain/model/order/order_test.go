package order_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("margherita", 2, []string{"extra-mozzarella"})
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	estimatedAt := createdAt.Add(4 * time.Minute)

	t.Run("should create valid pending order without identifier", func(t *testing.T) {
		o, err := order.NewOrder("user-1", "Mario", validItems(t), 20.0, createdAt, estimatedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Empty(t, o.ID())
		assert.Equal(t, "user-1", o.UserID())
		assert.Equal(t, "Mario", o.Nickname())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, estimatedAt, o.EstimatedCompletionAt())
		assert.Nil(t, o.ReadyAt())
		assert.Nil(t, o.CompletedAt())
		assert.InDelta(t, 20.0, o.TotalPrice(), 0.001)
		assert.Equal(t, 2, o.TotalQuantity())
	})

	t.Run("should fail without user", func(t *testing.T) {
		o, err := order.NewOrder("", "Mario", validItems(t), 20.0, createdAt, estimatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "userId")
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder("user-1", "", nil, 20.0, createdAt, estimatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with negative total price", func(t *testing.T) {
		o, err := order.NewOrder("user-1", "", validItems(t), -1.0, createdAt, estimatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "totalPrice")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder("", "", nil, -1.0, createdAt, estimatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "totalPrice")
	})

	t.Run("should reject not constructed order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	estimatedAt := createdAt.Add(4 * time.Minute)
	readyAt := createdAt.Add(5 * time.Minute)

	t.Run("should restore order with any valid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			"1234", "user-1", "Mario", validItems(t),
			order.Ready, 20.0, createdAt, estimatedAt, &readyAt, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, "1234", o.ID())
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.ReadyAt())
		assert.Equal(t, readyAt, *o.ReadyAt())
	})

	t.Run("should tolerate missing user for stripped records", func(t *testing.T) {
		o, err := order.RestoreOrder(
			"1234", "", "", validItems(t),
			order.Pending, 20.0, createdAt, estimatedAt, nil, nil,
		)

		require.NoError(t, err)
		assert.Empty(t, o.UserID())
	})

	t.Run("should fail without identifier", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"", "user-1", "", validItems(t),
			order.Pending, 20.0, createdAt, estimatedAt, nil, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id")
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"1234", "user-1", "", validItems(t),
			order.Unknown, 20.0, createdAt, estimatedAt, nil, nil,
		)

		require.Error(t, err)
	})
}

func TestOrderAssignID(t *testing.T) {
	createdAt := time.Now()

	t.Run("should assign identifier exactly once", func(t *testing.T) {
		o, err := order.NewOrder("user-1", "", validItems(t), 20.0, createdAt, createdAt.Add(4*time.Minute))
		require.NoError(t, err)

		require.NoError(t, o.AssignID("1234"))
		assert.Equal(t, "1234", o.ID())

		assert.ErrorIs(t, o.AssignID("5678"), order.ErrOrderIDAlreadyAssigned)
		assert.Equal(t, "1234", o.ID())
	})

	t.Run("should reject empty identifier", func(t *testing.T) {
		o, err := order.NewOrder("user-1", "", validItems(t), 20.0, createdAt, createdAt.Add(4*time.Minute))
		require.NoError(t, err)

		require.Error(t, o.AssignID(""))
	})
}

func TestOrderLifecycle(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("user-1", "", validItems(t), 20.0, createdAt, createdAt.Add(4*time.Minute))
		require.NoError(t, err)
		return o
	}

	t.Run("should walk the full happy path and set timestamps once", func(t *testing.T) {
		o := newPendingOrder(t)
		readyAt := createdAt.Add(5 * time.Minute)
		completedAt := createdAt.Add(7 * time.Minute)

		require.NoError(t, o.StartPreparation())
		assert.Equal(t, order.InPreparation, o.Status())

		require.NoError(t, o.MarkReady(readyAt))
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.ReadyAt())
		assert.Equal(t, readyAt, *o.ReadyAt())

		require.NoError(t, o.Complete(completedAt))
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
	})

	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should not cancel once preparation started", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.StartPreparation())

		require.Error(t, o.Cancel())
		assert.Equal(t, order.InPreparation, o.Status())
	})

	t.Run("should not skip statuses", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.MarkReady(createdAt))
		require.Error(t, o.Complete(createdAt))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrderAnonymized(t *testing.T) {
	t.Run("should strip the owner and leave the original untouched", func(t *testing.T) {
		createdAt := time.Now()
		o, err := order.NewOrder("user-1", "Mario", validItems(t), 20.0, createdAt, createdAt.Add(4*time.Minute))
		require.NoError(t, err)
		require.NoError(t, o.AssignID("1234"))

		public := o.Anonymized()

		assert.Empty(t, public.UserID())
		assert.Equal(t, "1234", public.ID())
		assert.Equal(t, "Mario", public.Nickname())
		assert.Equal(t, o.Items(), public.Items())
		assert.Equal(t, "user-1", o.UserID())
	})
}

func TestOrderIsEqual(t *testing.T) {
	createdAt := time.Now()

	makeOrder := func(t *testing.T, id string) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(
			id, "user-1", "", validItems(t),
			order.Pending, 20.0, createdAt, createdAt.Add(4*time.Minute), nil, nil,
		)
		require.NoError(t, err)
		return o
	}

	assert.True(t, makeOrder(t, "1").IsEqual(makeOrder(t, "1")))
	assert.False(t, makeOrder(t, "1").IsEqual(makeOrder(t, "2")))
	assert.False(t, makeOrder(t, "1").IsEqual(nil))
}
