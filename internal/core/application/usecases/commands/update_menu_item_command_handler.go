package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// UpdateMenuItemCommandHandler edits existing menu items. Carts capture unit
// prices at add time, so a price edit here never changes carts or orders
// built earlier.
type UpdateMenuItemCommandHandler struct {
	menuRepo ports.MenuRepository
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(menuRepo ports.MenuRepository) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		menuRepo: menuRepo,
	}
}

// Handle processes the edit. Fails with errs.ErrObjectNotFound for an
// unknown item.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err := item.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.PrepMinutes()); err != nil {
		return err
	}

	return h.menuRepo.Update(ctx, item)
}
