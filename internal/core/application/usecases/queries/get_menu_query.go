package queries

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the menu catalog, optionally narrowed to one
// category and/or to items currently available.
type GetMenuQuery struct {
	category      string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the menu. An empty category means all
// categories; availableOnly drops items pulled off the menu.
func NewGetMenuQuery(category string, availableOnly bool) GetMenuQuery {
	return GetMenuQuery{
		category:      category,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the category filter; empty means all categories.
func (q GetMenuQuery) Category() string {
	return q.category
}

// AvailableOnly reports whether unavailable items are dropped.
func (q GetMenuQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetMenuQueryResponse is the menu item read model.
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	Available   bool
	PrepMinutes int
}
