package commands

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
	"jikoni/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to convert a cart into a placed
// order at a selected table. Customer name and notes are optional.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(cartID, tableID, "John Smith", "birthday table")
//	if err != nil {
//	    return fmt.Errorf("invalid order placement: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("order %s placed, total %s", placed.ID(), placed.Total())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	cartID       kernel.UUID
	tableID      kernel.UUID
	customerName string
	notes        string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. A table must be
// selected: a zero-value tableID fails with a "value is required" error.
func NewPlaceOrderCommand(cartID, tableID kernel.UUID, customerName, notes string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerName: customerName,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setTableID(tableID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CartID returns the session cart being placed.
func (c PlaceOrderCommand) CartID() kernel.UUID {
	return c.cartID
}

// TableID returns the selected table.
func (c PlaceOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// CustomerName returns the optional customer name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Notes returns the optional order-level note.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *PlaceOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tableID", err)
	}
	c.tableID = tableID
	return nil
}
