package memory

import (
	"context"
	"sync"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/core/ports"
	"jikoni/internal/pkg/errs"
)

var _ ports.OrderRepository = &OrderRepository{}

// OrderRepository keeps placed orders in memory, most recent first.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderRepository creates an empty order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Add inserts a new order at the head of the registry.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]*order.Order{aggregate}, r.orders...)
	return nil
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID().IsEqual(aggregate.ID()) {
			r.orders[i] = aggregate
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderID", aggregate.ID())
}

// Get retrieves an order by its unique identifier.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderID", id)
}

// GetAll retrieves every order, most recent first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetAllByStatus retrieves orders in the given status, most recent first.
func (r *OrderRepository) GetAllByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.Status() == status {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
