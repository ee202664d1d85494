package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// RemoveCartItemCommandHandler handles unconditional removal of cart lines.
type RemoveCartItemCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removals.
func NewRemoveCartItemCommandHandler(cartStore ports.CartStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the removal. Fails with errs.ErrObjectNotFound when the
// cart does not exist and with errs.ErrValueIsOutOfRange when the line index
// does not refer to an existing line.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.cartStore.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	if err := c.RemoveItem(cmd.LineIndex()); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, c)
}
