package ports

import (
	"context"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/staff"
)

// StaffRoster holds the restaurant's staff members.
type StaffRoster interface {
	// Add inserts a new staff member.
	Add(ctx context.Context, member *staff.Member) error

	// Update persists changes to an existing staff member.
	Update(ctx context.Context, member *staff.Member) error

	// Get retrieves a staff member by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Member, error)

	// GetAll retrieves the whole roster.
	GetAll(ctx context.Context) ([]*staff.Member, error)
}
