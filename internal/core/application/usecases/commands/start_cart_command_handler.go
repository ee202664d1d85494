package commands

import (
	"context"

	"jikoni/internal/core/domain/model/cart"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/ports"
)

// StartCartCommandHandler opens new ordering sessions. Each session gets a
// fresh cart identified by a minted UUID.
type StartCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewStartCartCommandHandler creates a handler for starting ordering sessions.
func NewStartCartCommandHandler(cartStore ports.CartStore) StartCartCommandHandler {
	return StartCartCommandHandler{
		cartStore: cartStore,
	}
}

// Handle creates an empty cart and returns it so the caller can hand the
// session identifier back to the client.
func (h StartCartCommandHandler) Handle(ctx context.Context, cmd StartCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := cart.NewCart(kernel.NewUUID())
	if err != nil {
		return nil, err
	}

	if err := h.cartStore.Add(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
