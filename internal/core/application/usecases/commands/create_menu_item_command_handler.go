package commands

import (
	"context"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/menu"
	"jikoni/internal/core/ports"
)

// CreateMenuItemCommandHandler adds new items to the menu. New items start
// out available.
type CreateMenuItemCommandHandler struct {
	menuRepo ports.MenuRepository
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(menuRepo ports.MenuRepository) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		menuRepo: menuRepo,
	}
}

// Handle processes the creation and returns the new item.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewItem(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.PrepMinutes(),
	)
	if err != nil {
		return nil, err
	}

	if err := h.menuRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
