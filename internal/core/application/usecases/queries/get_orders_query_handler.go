package queries

import (
	"context"

	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/core/ports"
)

// GetOrdersQueryHandler reads orders through the order registry. The
// registry's most-recent-first ordering is preserved in the response.
type GetOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order reads.
func NewGetOrdersQueryHandler(orderRepo ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		orderRepo: orderRepo,
	}
}

// Handle executes the read, applying the status filter when one is set.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if status := query.Status(); status != nil {
		orders, err = h.orderRepo.GetAllByStatus(ctx, *status)
	} else {
		orders, err = h.orderRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	return responses, nil
}

func toOrderResponse(o *order.Order) GetOrdersQueryResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			MenuItemID: line.MenuItemID(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			Note:       line.Note(),
			Subtotal:   line.Subtotal(),
		})
	}

	return GetOrdersQueryResponse{
		ID:           o.ID(),
		TableID:      o.TableID(),
		Lines:        lines,
		Status:       o.Status(),
		Total:        o.Total(),
		ItemCount:    o.ItemCount(),
		CustomerName: o.CustomerName(),
		Notes:        o.Notes(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}
