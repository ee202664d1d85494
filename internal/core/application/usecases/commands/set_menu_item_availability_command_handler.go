package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// SetMenuItemAvailabilityCommandHandler flips items on and off the menu.
// Carts and orders that already hold the item are unaffected.
type SetMenuItemAvailabilityCommandHandler struct {
	menuRepo ports.MenuRepository
}

// NewSetMenuItemAvailabilityCommandHandler creates a handler for
// availability flips.
func NewSetMenuItemAvailabilityCommandHandler(menuRepo ports.MenuRepository) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		menuRepo: menuRepo,
	}
}

// Handle processes the flip. Fails with errs.ErrObjectNotFound for an
// unknown item.
func (h SetMenuItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetMenuItemAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item.SetAvailable(cmd.Available())

	return h.menuRepo.Update(ctx, item)
}
