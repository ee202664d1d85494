package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// UpdateCartItemCommandHandler handles quantity changes on cart lines,
// including the decrement-to-remove case.
type UpdateCartItemCommandHandler struct {
	cartStore ports.CartStore
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(cartStore ports.CartStore) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the quantity change. Fails with errs.ErrObjectNotFound
// when the cart does not exist and with errs.ErrValueIsOutOfRange when the
// line index does not refer to an existing line.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.cartStore.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	if err := c.UpdateQuantity(cmd.LineIndex(), cmd.Quantity()); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, c)
}
