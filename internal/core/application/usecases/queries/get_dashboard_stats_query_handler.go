package queries

import (
	"context"

	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/core/ports"
)

// GetDashboardStatsQueryHandler aggregates the order registry and the floor
// plan into the dashboard numbers.
type GetDashboardStatsQueryHandler struct {
	orderRepo     ports.OrderRepository
	tableRegistry ports.TableRegistry
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard reads.
func NewGetDashboardStatsQueryHandler(
	orderRepo ports.OrderRepository,
	tableRegistry ports.TableRegistry,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{
		orderRepo:     orderRepo,
		tableRegistry: tableRegistry,
	}
}

// Handle executes the aggregation.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	tables, err := h.tableRegistry.GetAll(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		TotalOrders: len(orders),
	}
	for _, o := range orders {
		if o.Status() == order.Paid {
			resp.TotalRevenue = resp.TotalRevenue.Add(o.Total())
		} else {
			resp.ActiveOrders++
		}
	}
	for _, tbl := range tables {
		switch tbl.Status() {
		case table.Available:
			resp.AvailableTables++
		case table.Occupied:
			resp.OccupiedTables++
		}
	}

	return resp, nil
}
