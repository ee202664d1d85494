package ports

import (
	"context"

	"jikoni/internal/core/domain/model/cart"
	"jikoni/internal/core/domain/model/kernel"
)

// CartStore holds the in-progress carts, one per ordering session. A cart is
// removed when it is converted into an order or the session is abandoned.
type CartStore interface {
	// Add inserts a new cart for an ordering session.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists line changes to an existing cart.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart by its session identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// Remove deletes a cart once its session is finished.
	Remove(ctx context.Context, id kernel.UUID) error
}
