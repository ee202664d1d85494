package commands

import (
	"context"
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/cart"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/core/ports"
)

var (
	// ErrTableNotAvailable is returned when the selected table is not in
	// Available status. Only available tables are selectable for new orders.
	ErrTableNotAvailable = errors.New("table is not available")
)

// PlaceOrderCommandHandler converts a cart into a placed order.
//
// On success the new order sits at the head of the registry in Pending
// status and the cart is observably empty: zero lines, zero total. The cart
// session itself stays open so the guest can start another round.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(cartStore, tableRegistry, orderRepo)
//	cmd, _ := NewPlaceOrderCommand(cartID, tableID, "", "")
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, cart.ErrCartIsEmpty):
//	    // nothing to place
//	case errors.Is(err, ErrTableNotAvailable):
//	    // ask the guest to pick another table
//	case err != nil:
//	    // lookup or validation failure
//	}
type PlaceOrderCommandHandler struct {
	cartStore     ports.CartStore
	tableRegistry ports.TableRegistry
	orderRepo     ports.OrderRepository
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	cartStore ports.CartStore,
	tableRegistry ports.TableRegistry,
	orderRepo ports.OrderRepository,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		cartStore:     cartStore,
		tableRegistry: tableRegistry,
		orderRepo:     orderRepo,
	}
}

// Handle processes the order placement. Preconditions are checked before
// anything mutates: the cart must exist and be non-empty, the table must
// exist and be available. When any precondition fails the registry and the
// cart are unchanged.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.cartStore.Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	tbl, err := h.tableRegistry.Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}
	if !tbl.IsAvailable() {
		return nil, fmt.Errorf("%w: table %d is %s", ErrTableNotAvailable, tbl.Number(), tbl.Status())
	}

	placed, err := order.NewOrder(kernel.NewUUID(), tbl.ID(), c.Lines(), cmd.CustomerName(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err := h.orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	c.Clear()
	if err := h.cartStore.Update(ctx, c); err != nil {
		return nil, err
	}

	return placed, nil
}
