package kernel

import (
	"fmt"

	"jikoni/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// cents. Storing cents as an integer keeps line subtotals and order totals
// exact; the display form ("150.00") is derived, never stored.
//
// The zero value is a valid zero amount, so Money needs no constructor guard.
type Money struct {
	cents int64
}

// NewMoney creates a Money amount from cents. Negative amounts are rejected:
// prices and totals in this domain are never negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MoneyFromUnits creates a Money amount from whole currency units, e.g.
// MoneyFromUnits(150) is 150.00. Menu fixtures use whole-unit prices.
func MoneyFromUnits(units int64) (Money, error) {
	return NewMoney(units * 100)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by a line quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "150.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
