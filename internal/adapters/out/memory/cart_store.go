package memory

import (
	"context"
	"sync"

	"jikoni/internal/core/domain/model/cart"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/ports"
	"jikoni/internal/pkg/errs"
)

var _ ports.CartStore = &CartStore{}

// CartStore keeps in-progress carts in memory, one per ordering session.
type CartStore struct {
	mu    sync.RWMutex
	carts map[kernel.UUID]*cart.Cart
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[kernel.UUID]*cart.Cart),
	}
}

// Add inserts a new cart for an ordering session.
func (s *CartStore) Add(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[aggregate.ID()] = aggregate
	return nil
}

// Update persists line changes to an existing cart.
func (s *CartStore) Update(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("cartID", aggregate.ID())
	}
	s.carts[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a cart by its session identifier.
func (s *CartStore) Get(_ context.Context, id kernel.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cartID", id)
	}
	return c, nil
}

// Remove deletes a cart once its session is finished. Removing an unknown
// session is not an error.
func (s *CartStore) Remove(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
	return nil
}
