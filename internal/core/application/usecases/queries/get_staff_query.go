package queries

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/staff"
	"jikoni/internal/pkg/guard"
)

var (
	ErrGetStaffQueryIsNotConstructed = errors.New(
		"GetStaffQuery must be created via NewGetStaffQuery constructor",
	)
)

// GetStaffQuery retrieves the staff roster, optionally narrowed to members
// currently on shift.
type GetStaffQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetStaffQuery creates a query for the roster.
func NewGetStaffQuery(activeOnly bool) GetStaffQuery {
	return GetStaffQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive members are dropped.
func (q GetStaffQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetStaffQueryResponse is the staff member read model.
type GetStaffQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Role   staff.Role
	Email  string
	Phone  string
	Active bool
}
