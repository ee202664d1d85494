package order_test

import (
	"testing"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	menuItemID := kernel.NewUUID()
	price, _ := kernel.MoneyFromUnits(150)

	t.Run("should create valid line item", func(t *testing.T) {
		line, err := order.NewLineItem(menuItemID, 2, price, "no salt")

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 2, line.Quantity())
		assert.True(t, line.UnitPrice().IsEqual(price))
		assert.Equal(t, "no salt", line.Note())
	})

	t.Run("note may be empty", func(t *testing.T) {
		line, err := order.NewLineItem(menuItemID, 1, price, "")

		require.NoError(t, err)
		assert.Empty(t, line.Note())
	})

	t.Run("should reject quantity below 1", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -10} {
			_, err := order.NewLineItem(menuItemID, quantity, price, "")

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should reject zero-value menu item id", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, 1, price, "")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.LineItem

		err := line.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	price, _ := kernel.MoneyFromUnits(150)

	t.Run("is unit price times quantity", func(t *testing.T) {
		line, _ := order.NewLineItem(kernel.NewUUID(), 3, price, "")

		assert.Equal(t, "450.00", line.Subtotal().String())
	})

	t.Run("single unit equals unit price", func(t *testing.T) {
		line, _ := order.NewLineItem(kernel.NewUUID(), 1, price, "")

		assert.True(t, line.Subtotal().IsEqual(price))
	})
}

func TestLineItem_MatchesKey(t *testing.T) {
	menuItemID := kernel.NewUUID()
	price, _ := kernel.MoneyFromUnits(150)

	t.Run("same item and note match", func(t *testing.T) {
		line, _ := order.NewLineItem(menuItemID, 1, price, "extra spicy")

		assert.True(t, line.MatchesKey(menuItemID, "extra spicy"))
	})

	t.Run("same item with different note does not match", func(t *testing.T) {
		line, _ := order.NewLineItem(menuItemID, 1, price, "extra spicy")

		assert.False(t, line.MatchesKey(menuItemID, ""))
		assert.False(t, line.MatchesKey(menuItemID, "mild"))
	})

	t.Run("different item with same note does not match", func(t *testing.T) {
		line, _ := order.NewLineItem(menuItemID, 1, price, "")

		assert.False(t, line.MatchesKey(kernel.NewUUID(), ""))
	})

	t.Run("no note matches no note", func(t *testing.T) {
		line, _ := order.NewLineItem(menuItemID, 1, price, "")

		assert.True(t, line.MatchesKey(menuItemID, ""))
	})
}

func TestLineItem_WithQuantity(t *testing.T) {
	price, _ := kernel.MoneyFromUnits(150)

	t.Run("copies the line with a new quantity", func(t *testing.T) {
		line, _ := order.NewLineItem(kernel.NewUUID(), 1, price, "note")

		merged, err := line.WithQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, 3, merged.Quantity())
		assert.Equal(t, 1, line.Quantity())
		assert.Equal(t, "note", merged.Note())
		assert.True(t, merged.UnitPrice().IsEqual(price))
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		line, _ := order.NewLineItem(kernel.NewUUID(), 1, price, "")

		_, err := line.WithQuantity(0)

		require.Error(t, err)
	})
}
