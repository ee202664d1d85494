package queries_test

import (
	"context"
	"testing"

	"jikoni/internal/core/application/usecases/queries"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/menu"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/core/domain/model/table"

	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, name string, priceUnits int64) *menu.Item {
	t.Helper()
	price, err := kernel.MoneyFromUnits(priceUnits)
	require.NoError(t, err)
	item, err := menu.NewItem(kernel.NewUUID(), name, "", price, "Main Course", 10)
	require.NoError(t, err)
	return item
}

func newOrderWithStatus(t *testing.T, priceUnits int64, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromUnits(priceUnits)
	require.NoError(t, err)
	line, err := order.NewLineItem(kernel.NewUUID(), 1, price, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{line}, "", "")
	require.NoError(t, err)
	require.NoError(t, o.SetStatus(status))
	return o
}

func newTableWithStatus(t *testing.T, number int, status table.Status) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewUUID(), number, 4)
	require.NoError(t, err)
	require.NoError(t, tbl.SetStatus(status))
	return tbl
}

func TestGetDashboardStatsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	orders := []*order.Order{
		newOrderWithStatus(t, 800, order.Paid),
		newOrderWithStatus(t, 400, order.Paid),
		newOrderWithStatus(t, 250, order.Preparing),
		newOrderWithStatus(t, 150, order.Pending),
		newOrderWithStatus(t, 80, order.Served),
	}
	tables := []*table.Table{
		newTableWithStatus(t, 1, table.Available),
		newTableWithStatus(t, 2, table.Available),
		newTableWithStatus(t, 3, table.Occupied),
		newTableWithStatus(t, 4, table.Reserved),
		newTableWithStatus(t, 5, table.Cleaning),
	}

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()
	tableRegistry := new(MockTableRegistry)
	tableRegistry.On("GetAll", ctx).Return(tables, nil).Once()

	h := queries.NewGetDashboardStatsQueryHandler(orderRepo, tableRegistry)
	resp, err := h.Handle(ctx, queries.NewGetDashboardStatsQuery())
	require.NoError(t, err)

	require.Equal(t, 5, resp.TotalOrders)
	require.Equal(t, 3, resp.ActiveOrders)
	require.Equal(t, 2, resp.AvailableTables)
	require.Equal(t, 1, resp.OccupiedTables)

	// revenue counts only the two paid orders
	wantRevenue, err := kernel.MoneyFromUnits(1200)
	require.NoError(t, err)
	require.True(t, resp.TotalRevenue.IsEqual(wantRevenue))
}

func TestGetDashboardStatsQueryHandler_Handle_EmptyRestaurant(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()
	tableRegistry := new(MockTableRegistry)
	tableRegistry.On("GetAll", ctx).Return([]*table.Table{}, nil).Once()

	h := queries.NewGetDashboardStatsQueryHandler(orderRepo, tableRegistry)
	resp, err := h.Handle(ctx, queries.NewGetDashboardStatsQuery())
	require.NoError(t, err)

	require.Zero(t, resp.TotalOrders)
	require.Zero(t, resp.ActiveOrders)
	require.True(t, resp.TotalRevenue.IsZero())
}

func TestGetDashboardStatsQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	h := queries.NewGetDashboardStatsQueryHandler(new(MockOrderRepository), new(MockTableRegistry))
	_, err := h.Handle(ctx, queries.GetDashboardStatsQuery{})
	require.ErrorIs(t, err, queries.ErrGetDashboardStatsQueryIsNotConstructed)
}
