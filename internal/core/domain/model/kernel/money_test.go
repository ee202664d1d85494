package kernel_test

import (
	"testing"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create amount from cents", func(t *testing.T) {
		m, err := kernel.NewMoney(15000)

		require.NoError(t, err)
		assert.Equal(t, int64(15000), m.Cents())
		assert.Equal(t, "150.00", m.String())
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 cents is negative")
	})
}

func TestMoneyFromUnits(t *testing.T) {
	t.Run("should scale whole units to cents", func(t *testing.T) {
		m, err := kernel.MoneyFromUnits(800)

		require.NoError(t, err)
		assert.Equal(t, int64(80000), m.Cents())
		assert.Equal(t, "800.00", m.String())
	})

	t.Run("should reject negative units", func(t *testing.T) {
		_, err := kernel.MoneyFromUnits(-5)

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	ugali, _ := kernel.MoneyFromUnits(150)
	nyamaChoma, _ := kernel.MoneyFromUnits(800)

	t.Run("Add sums amounts", func(t *testing.T) {
		total := ugali.Add(nyamaChoma)

		assert.Equal(t, int64(95000), total.Cents())
		assert.Equal(t, "950.00", total.String())
	})

	t.Run("MulQuantity scales by line quantity", func(t *testing.T) {
		subtotal := ugali.MulQuantity(2)

		assert.Equal(t, "300.00", subtotal.String())
	})

	t.Run("IsEqual compares amounts", func(t *testing.T) {
		other, _ := kernel.NewMoney(15000)

		assert.True(t, ugali.IsEqual(other))
		assert.False(t, ugali.IsEqual(nyamaChoma))
	})

	t.Run("fractional cents render with two digits", func(t *testing.T) {
		m, err := kernel.NewMoney(1205)

		require.NoError(t, err)
		assert.Equal(t, "12.05", m.String())
	})
}
