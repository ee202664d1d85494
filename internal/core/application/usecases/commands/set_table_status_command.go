package commands

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/pkg/guard"
)

var (
	ErrSetTableStatusCommandIsNotConstructed = errors.New(
		"SetTableStatusCommand must be created via NewSetTableStatusCommand constructor",
	)
)

// SetTableStatusCommand represents a request to change a table's floor
// state, optionally tying an order to it when the table is marked Occupied.
type SetTableStatusCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	status         table.Status
	currentOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetTableStatusCommand creates a command to change a table's floor
// state. currentOrderID may be nil; it is only meaningful when the target
// status is Occupied.
func NewSetTableStatusCommand(
	tableID kernel.UUID,
	status table.Status,
	currentOrderID *kernel.UUID,
) (SetTableStatusCommand, error) {
	cmd := SetTableStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setStatus(status),
		cmd.setCurrentOrderID(currentOrderID),
	); err != nil {
		return SetTableStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTableStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetTableStatusCommandIsNotConstructed)
}

// TableID returns the table being changed.
func (c SetTableStatusCommand) TableID() kernel.UUID {
	return c.tableID
}

// Status returns the target floor state.
func (c SetTableStatusCommand) Status() table.Status {
	return c.status
}

// CurrentOrderID returns the order to tie to the table, or nil.
func (c SetTableStatusCommand) CurrentOrderID() *kernel.UUID {
	return c.currentOrderID
}

func (c *SetTableStatusCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.tableID = tableID
	return nil
}

func (c *SetTableStatusCommand) setStatus(status table.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SetTableStatusCommand) setCurrentOrderID(currentOrderID *kernel.UUID) error {
	if currentOrderID == nil {
		return nil
	}
	if err := currentOrderID.Validate(); err != nil {
		return err
	}
	id := *currentOrderID
	c.currentOrderID = &id
	return nil
}
