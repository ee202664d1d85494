package commands

import (
	"context"

	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/core/ports"
)

// SetTableStatusCommandHandler changes a table's floor state. The order link
// follows the status: marking a table Occupied with an order ID records it,
// any other status clears it.
type SetTableStatusCommandHandler struct {
	tableRegistry ports.TableRegistry
}

// NewSetTableStatusCommandHandler creates a handler for table floor changes.
func NewSetTableStatusCommandHandler(tableRegistry ports.TableRegistry) SetTableStatusCommandHandler {
	return SetTableStatusCommandHandler{
		tableRegistry: tableRegistry,
	}
}

// Handle processes the floor change. Fails with errs.ErrObjectNotFound for an
// unknown table.
func (h SetTableStatusCommandHandler) Handle(ctx context.Context, cmd SetTableStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tbl, err := h.tableRegistry.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	if err := tbl.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if cmd.Status() == table.Occupied && cmd.CurrentOrderID() != nil {
		if err := tbl.AssignOrder(*cmd.CurrentOrderID()); err != nil {
			return err
		}
	}

	return h.tableRegistry.Update(ctx, tbl)
}
