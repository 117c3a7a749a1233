package order_test

import (
	"testing"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) order.Details {
	t.Helper()
	box, err := order.NewItem("box", 3)
	require.NoError(t, err)
	details, err := order.NewDetails("Acme", "2024-01-01", 3, []order.Item{box})
	require.NoError(t, err)
	return details
}

func TestNewItem(t *testing.T) {
	t.Run("should trim the name", func(t *testing.T) {
		item, err := order.NewItem("  box ", 2)

		require.NoError(t, err)
		assert.Equal(t, "box", item.Name())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := order.NewItem(" ", 2)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		_, err := order.NewItem("box", 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestNewDetails(t *testing.T) {
	t.Run("should keep item order", func(t *testing.T) {
		a, _ := order.NewItem("a", 1)
		b, _ := order.NewItem("b", 2)

		details, err := order.NewDetails("Acme", "2024-01-01", 3, []order.Item{b, a})

		require.NoError(t, err)
		require.NoError(t, details.Validate())
		assert.Equal(t, []order.Item{b, a}, details.Items())
	})

	t.Run("should accept an order without items", func(t *testing.T) {
		details, err := order.NewDetails("Acme", "2024-01-01", 1, nil)

		require.NoError(t, err)
		assert.Empty(t, details.Items())
	})

	t.Run("should report every violation at once", func(t *testing.T) {
		_, err := order.NewDetails("", " ", 0, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "company")
		assert.Contains(t, err.Error(), "orderDate")
		assert.Contains(t, err.Error(), "totalVolumes")
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should not share the caller's slice", func(t *testing.T) {
		a, _ := order.NewItem("a", 1)
		b, _ := order.NewItem("b", 1)
		items := []order.Item{a}

		details, err := order.NewDetails("Acme", "2024-01-01", 1, items)
		require.NoError(t, err)
		items[0] = b

		assert.Equal(t, "a", details.Items()[0].Name())
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		require.ErrorIs(t, order.Details{}.Validate(), order.ErrDetailsIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	receivedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should start in received status", func(t *testing.T) {
		details := validDetails(t)

		o, err := order.NewOrder(42, receivedAt, details)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.OrderID(42), o.ID())
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, receivedAt, o.ReceivedAt())
		assert.Equal(t, "Acme", o.Details().Company())
		assert.Equal(t, 3, o.Details().TotalVolumes())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		o, err := order.NewOrder(0, receivedAt, validDetails(t))

		require.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed details", func(t *testing.T) {
		o, err := order.NewOrder(1, receivedAt, order.Details{})

		require.ErrorIs(t, err, order.ErrDetailsIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("should require receipt time", func(t *testing.T) {
		o, err := order.NewOrder(1, time.Time{}, validDetails(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(7, time.Now(), validDetails(t), order.Finalized)

		require.NoError(t, err)
		assert.Equal(t, order.Finalized, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(7, time.Now(), validDetails(t), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("any status may follow any other", func(t *testing.T) {
		o, err := order.NewOrder(1, time.Now(), validDetails(t))
		require.NoError(t, err)

		for _, next := range []order.Status{order.Finalized, order.Received, order.Picking, order.Picking} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should reject invalid status and keep the current one", func(t *testing.T) {
		o, err := order.NewOrder(1, time.Now(), validDetails(t))
		require.NoError(t, err)

		require.Error(t, o.ChangeStatus(order.Status(9)))
		assert.Equal(t, order.Received, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order

	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "orderCreated", order.OrderCreated{}.Name())
	assert.Equal(t, "statusUpdated", order.StatusUpdated{}.Name())
	assert.Equal(t, "orderDeleted", order.OrderDeleted{}.Name())
}
