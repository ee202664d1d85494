package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// AdvanceOrderCommandHandler moves orders one step along the status chain.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(orderRepo)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyPaid) {
//	    // the order is settled; nothing to advance
//	}
type AdvanceOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
func NewAdvanceOrderCommandHandler(orderRepo ports.OrderRepository) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle processes the advancement. Fails with errs.ErrObjectNotFound for an
// unknown order and propagates order.ErrOrderAlreadyPaid for a terminal one;
// the caller decides whether the latter is worth surfacing.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := o.Advance(); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, o)
}
