package commands

import (
	"context"

	"jikoni/internal/core/ports"
)

// SetOrderStatusCommandHandler applies explicit status overrides to orders.
// Unlike AdvanceOrderCommandHandler it allows any-to-any transitions,
// including moving a paid order back; that freedom is the point of the
// manual path.
type SetOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewSetOrderStatusCommandHandler creates a handler for status overrides.
func NewSetOrderStatusCommandHandler(orderRepo ports.OrderRepository) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle processes the override. Fails with errs.ErrObjectNotFound for an
// unknown order.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := o.SetStatus(cmd.Status()); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, o)
}
