package queries

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves the headline numbers for the manager
// dashboard. This is a parameterless query.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard numbers.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse is the dashboard read model. ActiveOrders
// counts everything not yet paid; TotalRevenue sums paid orders only.
type GetDashboardStatsQueryResponse struct {
	TotalOrders     int
	ActiveOrders    int
	TotalRevenue    kernel.Money
	AvailableTables int
	OccupiedTables  int
}
