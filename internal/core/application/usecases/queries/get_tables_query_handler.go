package queries

import (
	"context"

	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/core/ports"
)

// GetTablesQueryHandler reads the floor plan through the table registry.
// Tables come back in floor-plan order (by table number).
type GetTablesQueryHandler struct {
	tableRegistry ports.TableRegistry
}

// NewGetTablesQueryHandler creates a handler for floor plan reads.
func NewGetTablesQueryHandler(tableRegistry ports.TableRegistry) GetTablesQueryHandler {
	return GetTablesQueryHandler{
		tableRegistry: tableRegistry,
	}
}

// Handle executes the read.
func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) ([]GetTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		tables []*table.Table
		err    error
	)
	if query.AvailableOnly() {
		tables, err = h.tableRegistry.GetAllAvailable(ctx)
	} else {
		tables, err = h.tableRegistry.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]GetTablesQueryResponse, 0, len(tables))
	for _, tbl := range tables {
		responses = append(responses, GetTablesQueryResponse{
			ID:             tbl.ID(),
			Number:         tbl.Number(),
			Capacity:       tbl.Capacity(),
			Status:         tbl.Status(),
			CurrentOrderID: tbl.CurrentOrderID(),
		})
	}

	return responses, nil
}
