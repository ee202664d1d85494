package memory

import (
	"context"
	"sort"
	"sync"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/staff"
	"jikoni/internal/core/ports"
	"jikoni/internal/pkg/errs"
)

var _ ports.StaffRoster = &StaffRoster{}

// StaffRoster keeps the staff roster in memory.
type StaffRoster struct {
	mu      sync.RWMutex
	members map[kernel.UUID]*staff.Member
}

// NewStaffRoster creates an empty roster.
func NewStaffRoster() *StaffRoster {
	return &StaffRoster{
		members: make(map[kernel.UUID]*staff.Member),
	}
}

// Add inserts a new staff member.
func (r *StaffRoster) Add(_ context.Context, member *staff.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.members[member.ID()] = member
	return nil
}

// Update persists changes to an existing staff member.
func (r *StaffRoster) Update(_ context.Context, member *staff.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[member.ID()]; !ok {
		return errs.NewObjectNotFoundError("staffID", member.ID())
	}
	r.members[member.ID()] = member
	return nil
}

// Get retrieves a staff member by their unique identifier.
func (r *StaffRoster) Get(_ context.Context, id kernel.UUID) (*staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("staffID", id)
	}
	return member, nil
}

// GetAll retrieves the whole roster sorted by name.
func (r *StaffRoster) GetAll(_ context.Context) ([]*staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*staff.Member, 0, len(r.members))
	for _, member := range r.members {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].Name() < members[j].Name()
	})
	return members, nil
}
