package commands

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
	"jikoni/internal/pkg/guard"
)

var (
	ErrUpdateCartItemCommandIsNotConstructed = errors.New(
		"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
	)
)

// UpdateCartItemCommand represents a request to change the quantity of one
// cart line. A quantity of zero or below removes the line; the minus button
// on the cart view counts down to exactly this.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	lineIndex int
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart line's
// quantity. The line index must be non-negative; whether it refers to an
// existing line is checked against the cart itself. Any quantity is
// accepted: zero and below mean removal.
func NewUpdateCartItemCommand(cartID kernel.UUID, lineIndex, quantity int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setLineIndex(lineIndex),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CartID returns the target cart's session identifier.
func (c UpdateCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

// LineIndex returns the position of the line being changed.
func (c UpdateCartItemCommand) LineIndex() int {
	return c.lineIndex
}

// Quantity returns the new quantity; zero or below removes the line.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *UpdateCartItemCommand) setLineIndex(lineIndex int) error {
	if lineIndex < 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineIndex",
			fmt.Errorf("%d is negative", lineIndex))
	}
	c.lineIndex = lineIndex
	return nil
}
