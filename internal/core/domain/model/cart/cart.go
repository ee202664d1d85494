package cart

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/menu"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not
	// created through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrCartIsEmpty is returned when an empty cart would be placed as an
	// order.
	ErrCartIsEmpty = errors.New("cart has no line items")

	// ErrItemUnavailable is returned when a menu item currently marked
	// unavailable would be added to the cart.
	ErrItemUnavailable = errors.New("menu item is not available")
)

// Cart accumulates line items for one in-progress ordering session.
//
// Cart maintains these invariants:
//   - No two lines share the same (menu item, note) key; repeated additions
//     merge by summing quantities
//   - Every line has quantity >= 1; setting a quantity to zero or below
//     removes the line (decrement-to-remove, the designed behavior)
//   - Unit prices are captured from the menu at add time
//   - A failed operation leaves the cart unchanged
//
// A note is part of a line's identity: "Ugali" and "Ugali, no salt" stay
// separate lines. The empty string means no note, so an addition without a
// note always merges with earlier no-note additions of the same item.
type Cart struct {
	id kernel.UUID

	// lines keeps insertion order for display
	lines []order.LineItem

	// isConstructed ensures the cart was created via NewCart
	isConstructed bool
}

// NewCart creates an empty cart for a new ordering session.
func NewCart(id kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		isConstructed: true,
	}, nil
}

// Validate ensures the Cart was constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// IsEqual compares two carts by identifier.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's session identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []order.LineItem {
	lines := make([]order.LineItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds quantity units of a menu item to the cart, capturing the
// item's current price. If a line with the same (menu item, note) key exists
// its quantity is increased; otherwise a new line is appended.
//
// Fails when quantity is below 1 or the item is marked unavailable; the cart
// is unchanged on failure.
func (c *Cart) AddItem(item *menu.Item, quantity int, note string) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	if !item.IsAvailable() {
		return fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name())
	}

	for i, line := range c.lines {
		if line.MatchesKey(item.ID(), note) {
			merged, err := line.WithQuantity(line.Quantity() + quantity)
			if err != nil {
				return err
			}
			c.lines[i] = merged
			return nil
		}
	}

	line, err := order.NewLineItem(item.ID(), quantity, item.Price(), note)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// UpdateQuantity sets the quantity of the line at lineIndex. A quantity of
// zero or below removes the line entirely; this decrement-to-remove behavior
// is what the minus button on the cart view relies on.
func (c *Cart) UpdateQuantity(lineIndex, quantity int) error {
	if err := c.checkIndex(lineIndex); err != nil {
		return err
	}

	if quantity <= 0 {
		c.removeAt(lineIndex)
		return nil
	}

	updated, err := c.lines[lineIndex].WithQuantity(quantity)
	if err != nil {
		return err
	}
	c.lines[lineIndex] = updated
	return nil
}

// RemoveItem removes the line at lineIndex unconditionally.
func (c *Cart) RemoveItem(lineIndex int) error {
	if err := c.checkIndex(lineIndex); err != nil {
		return err
	}

	c.removeAt(lineIndex)
	return nil
}

// Total returns the sum of line subtotals. Pure; no side effects.
func (c *Cart) Total() kernel.Money {
	total := kernel.Money{}
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ItemCount returns the sum of quantities across all lines, for the cart
// badge. Pure; no side effects.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity()
	}
	return count
}

// Clear removes all lines. Called after the cart has been converted into an
// order; afterwards the cart is empty and its total is zero.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) checkIndex(lineIndex int) error {
	if lineIndex < 0 || lineIndex >= len(c.lines) {
		return errs.NewValueIsOutOfRangeError("lineIndex", lineIndex, 0, len(c.lines)-1)
	}
	return nil
}

func (c *Cart) removeAt(lineIndex int) {
	c.lines = append(c.lines[:lineIndex], c.lines[lineIndex+1:]...)
}
