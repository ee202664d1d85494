package queries

import (
	"context"

	"jikoni/internal/core/ports"
)

// GetStaffQueryHandler reads the roster through the staff port.
type GetStaffQueryHandler struct {
	staffRoster ports.StaffRoster
}

// NewGetStaffQueryHandler creates a handler for roster reads.
func NewGetStaffQueryHandler(staffRoster ports.StaffRoster) GetStaffQueryHandler {
	return GetStaffQueryHandler{
		staffRoster: staffRoster,
	}
}

// Handle executes the read, applying the active filter.
func (h GetStaffQueryHandler) Handle(ctx context.Context, query GetStaffQuery) ([]GetStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members, err := h.staffRoster.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetStaffQueryResponse, 0, len(members))
	for _, member := range members {
		if query.ActiveOnly() && !member.IsActive() {
			continue
		}
		responses = append(responses, GetStaffQueryResponse{
			ID:     member.ID(),
			Name:   member.Name(),
			Role:   member.Role(),
			Email:  member.Email(),
			Phone:  member.Phone(),
			Active: member.IsActive(),
		})
	}

	return responses, nil
}
