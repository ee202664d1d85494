package queries

import (
	"context"

	"jikoni/internal/core/domain/model/menu"
	"jikoni/internal/core/ports"
)

// GetMenuQueryHandler reads the catalog through the menu repository.
type GetMenuQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler for menu reads.
func NewGetMenuQueryHandler(menuRepo ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{
		menuRepo: menuRepo,
	}
}

// Handle executes the read, applying the category and availability filters.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		items []*menu.Item
		err   error
	)
	if query.AvailableOnly() {
		items, err = h.menuRepo.GetAllAvailable(ctx)
	} else {
		items, err = h.menuRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		if query.Category() != "" && item.Category() != query.Category() {
			continue
		}
		responses = append(responses, GetMenuQueryResponse{
			ID:          item.ID(),
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			Category:    item.Category(),
			Available:   item.IsAvailable(),
			PrepMinutes: item.PrepMinutes(),
		})
	}

	return responses, nil
}
