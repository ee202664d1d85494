// Package ports defines the contracts between the application core and its
// storage adapters. All implementations return errs.ErrObjectNotFound (via
// errs.ObjectNotFoundError) for lookups that find nothing.
package ports

import (
	"context"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
)

// OrderRepository is the registry of placed orders. The registry keeps
// most-recent-first ordering: Add inserts at the head, and the Get* methods
// preserve that order.
type OrderRepository interface {
	// Add inserts a newly placed order at the head of the registry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, most recent first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByStatus retrieves orders in the given status, most recent first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
