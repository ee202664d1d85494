package queries

import (
	"errors"
	"time"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves placed orders, most recent first, optionally
// filtered to a single status.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByStatusQuery creates a query for orders in one status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setStatus(status); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for all orders.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = &status
	return nil
}

// OrderLineResponse is one order line in the read model.
type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Note       string
	Subtotal   kernel.Money
}

// GetOrdersQueryResponse is the order read model.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	TableID      kernel.UUID
	Lines        []OrderLineResponse
	Status       order.Status
	Total        kernel.Money
	ItemCount    int
	CustomerName string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
