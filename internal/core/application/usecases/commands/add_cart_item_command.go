package commands

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
	"jikoni/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
)

// AddCartItemCommand represents a request to add a menu item to a cart.
// The note is optional; an empty note merges with earlier no-note additions
// of the same item.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(cartID, menuItemID, 2, "no salt")
//	if err != nil {
//	    return fmt.Errorf("invalid cart addition: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	note       string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// Validates that both identifiers are valid and quantity is at least 1.
func NewAddCartItemCommand(cartID, menuItemID kernel.UUID, quantity int, note string) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CartID returns the target cart's session identifier.
func (c AddCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

// MenuItemID returns the menu item being added.
func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// Note returns the optional per-line note.
func (c AddCartItemCommand) Note() string {
	return c.note
}

func (c *AddCartItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	c.quantity = quantity
	return nil
}
