package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// AddCartItemCommandHandler handles additions to an in-progress cart.
// Looks up the menu item so the cart can check availability and capture the
// current price, then saves the updated cart.
type AddCartItemCommandHandler struct {
	cartStore ports.CartStore
	menuRepo  ports.MenuRepository
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(cartStore ports.CartStore, menuRepo ports.MenuRepository) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		cartStore: cartStore,
		menuRepo:  menuRepo,
	}
}

// Handle processes the cart addition. Fails with errs.ErrObjectNotFound when
// the cart or menu item does not exist, and with cart.ErrItemUnavailable
// when the item is off the menu; the cart is unchanged on failure.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.cartStore.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	item, err := h.menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err := c.AddItem(item, cmd.Quantity(), cmd.Note()); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, c)
}
