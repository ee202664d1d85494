package queries

import (
	"context"

	"jikoni/internal/core/ports"
)

// GetCartQueryHandler reads a cart through the cart store and flattens it
// into the read model.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(cartStore ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{
		cartStore: cartStore,
	}
}

// Handle executes the read. Fails with errs.ErrObjectNotFound for an unknown
// session.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	c, err := h.cartStore.Get(ctx, query.CartID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	lines := make([]CartLineResponse, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		lines = append(lines, CartLineResponse{
			MenuItemID: line.MenuItemID(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			Note:       line.Note(),
			Subtotal:   line.Subtotal(),
		})
	}

	return GetCartQueryResponse{
		ID:        c.ID(),
		Lines:     lines,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}, nil
}
