package queries

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/pkg/guard"
)

var (
	ErrGetTablesQueryIsNotConstructed = errors.New(
		"GetTablesQuery must be created via NewGetTablesQuery constructor",
	)
)

// GetTablesQuery retrieves the floor plan, optionally narrowed to tables
// selectable for a new order.
type GetTablesQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetTablesQuery creates a query for the floor plan.
func NewGetTablesQuery(availableOnly bool) GetTablesQuery {
	return GetTablesQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

// AvailableOnly reports whether only selectable tables are returned.
func (q GetTablesQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetTablesQueryResponse is the table read model. CurrentOrderID is nil
// unless an order is tied to the table.
type GetTablesQueryResponse struct {
	ID             kernel.UUID
	Number         int
	Capacity       int
	Status         table.Status
	CurrentOrderID *kernel.UUID
}
