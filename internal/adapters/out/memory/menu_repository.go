package memory

import (
	"context"
	"sort"
	"sync"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/menu"
	"jikoni/internal/core/ports"
	"jikoni/internal/pkg/errs"
)

var _ ports.MenuRepository = &MenuRepository{}

// MenuRepository keeps the menu catalog in memory.
type MenuRepository struct {
	mu    sync.RWMutex
	items map[kernel.UUID]*menu.Item
}

// NewMenuRepository creates an empty menu repository.
func NewMenuRepository() *MenuRepository {
	return &MenuRepository{
		items: make(map[kernel.UUID]*menu.Item),
	}
}

// Add inserts a new menu item.
func (r *MenuRepository) Add(_ context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID()] = item
	return nil
}

// Update persists edits to an existing menu item.
func (r *MenuRepository) Update(_ context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID()]; !ok {
		return errs.NewObjectNotFoundError("menuItemID", item.ID())
	}
	r.items[item.ID()] = item
	return nil
}

// Get retrieves a menu item by its unique identifier.
func (r *MenuRepository) Get(_ context.Context, id kernel.UUID) (*menu.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menuItemID", id)
	}
	return item, nil
}

// GetAll retrieves the full catalog sorted by category, then name.
func (r *MenuRepository) GetAll(_ context.Context) ([]*menu.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(*menu.Item) bool { return true }), nil
}

// GetAllAvailable retrieves only items that may be added to new carts.
func (r *MenuRepository) GetAllAvailable(_ context.Context) ([]*menu.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(item *menu.Item) bool { return item.IsAvailable() }), nil
}

func (r *MenuRepository) collect(keep func(*menu.Item) bool) []*menu.Item {
	items := make([]*menu.Item, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category() != items[j].Category() {
			return items[i].Category() < items[j].Category()
		}
		return items[i].Name() < items[j].Name()
	})
	return items
}
