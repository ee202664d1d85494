package commands

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
	"jikoni/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// RemoveCartItemCommand represents a request to delete one cart line
// outright, regardless of its quantity.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	lineIndex int

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(cartID kernel.UUID, lineIndex int) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setLineIndex(lineIndex),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CartID returns the target cart's session identifier.
func (c RemoveCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

// LineIndex returns the position of the line being removed.
func (c RemoveCartItemCommand) LineIndex() int {
	return c.lineIndex
}

func (c *RemoveCartItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *RemoveCartItemCommand) setLineIndex(lineIndex int) error {
	if lineIndex < 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineIndex",
			fmt.Errorf("%d is negative", lineIndex))
	}
	c.lineIndex = lineIndex
	return nil
}
