package ports

import (
	"context"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/menu"
)

// MenuRepository is the menu catalog. The ordering core uses only the read
// side (Get, GetAllAvailable) to validate availability and capture prices;
// the write side serves menu management.
type MenuRepository interface {
	// Add inserts a new menu item.
	Add(ctx context.Context, item *menu.Item) error

	// Update persists edits to an existing menu item.
	Update(ctx context.Context, item *menu.Item) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetAll retrieves the full catalog, including unavailable items.
	GetAll(ctx context.Context) ([]*menu.Item, error)

	// GetAllAvailable retrieves only items that may be added to new carts.
	GetAllAvailable(ctx context.Context) ([]*menu.Item, error)
}
