package order

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object for one line of a cart or order: a menu item
// reference, a quantity, the unit price captured when the line was added, and
// an optional free-text note.
//
// The unit price is captured at add time so later catalog price edits never
// change carts or orders built earlier.
//
// Two lines are the same for merge purposes when both menu item and note
// match. The note is part of the identity: "Ugali" and "Ugali, extra salt"
// are distinct lines. An absent note is canonicalized to the empty string,
// so "no note" and "" are the same key.
type LineItem struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	note       string

	isConstructed bool
}

// NewLineItem creates a LineItem with validation. Quantity must be at least 1.
func NewLineItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, note string) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return LineItem{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		note:          note,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was constructed through NewLineItem.
func (l LineItem) Validate() error {
	if !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (l LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the number of units ordered.
func (l LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price captured when the line was added.
func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Note returns the free-text note; empty means no note.
func (l LineItem) Note() string {
	return l.note
}

// Subtotal returns unit price times quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

// MatchesKey reports whether the line has the given (menu item, note)
// identity. Merge decisions in the cart use this.
func (l LineItem) MatchesKey(menuItemID kernel.UUID, note string) bool {
	return l.menuItemID.IsEqual(menuItemID) && l.note == note
}

// WithQuantity returns a copy of the line with the given quantity. Used when
// merging additions of the same (menu item, note) key.
func (l LineItem) WithQuantity(quantity int) (LineItem, error) {
	return NewLineItem(l.menuItemID, quantity, l.unitPrice, l.note)
}
