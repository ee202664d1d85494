package ports

import (
	"context"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/table"
)

// TableRegistry holds the restaurant's dining tables. The ordering core
// reads it to validate table selection; floor staff mutate table status
// through the write side.
type TableRegistry interface {
	// Add inserts a new table.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists status changes to an existing table.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetAll retrieves every table in floor-plan order (by table number).
	GetAll(ctx context.Context) ([]*table.Table, error)

	// GetAllAvailable retrieves only tables selectable for a new order.
	GetAllAvailable(ctx context.Context) ([]*table.Table, error)
}
