package table

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through the NewTable factory method.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table represents a dining table on the restaurant floor.
//
// Table maintains these invariants:
//   - Must have a valid unique identifier
//   - Number and capacity are positive
//   - Status is always a valid Status value
//   - Can only be created through NewTable
//
// The currentOrderID link is bookkeeping for the floor overview; it is set
// when staff tie an order to an occupied table and cleared when the table is
// turned over.
type Table struct {
	id kernel.UUID

	// number is the table's display number on the floor plan
	number int

	// capacity is the number of seats
	capacity int

	// status is the current floor state
	status Status

	// currentOrderID is the order being served at this table (nil if none)
	currentOrderID *kernel.UUID

	// isConstructed ensures the table was created via NewTable
	isConstructed bool
}

// NewTable creates a Table with validation. New tables start Available.
func NewTable(id kernel.UUID, number, capacity int) (*Table, error) {
	t := &Table{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Table was constructed through NewTable.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// IsEqual compares two tables by identifier.
func (t *Table) IsEqual(other *Table) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Number returns the table's display number.
func (t *Table) Number() int {
	return t.number
}

// Capacity returns the number of seats.
func (t *Table) Capacity() int {
	return t.capacity
}

// Status returns the current floor state.
func (t *Table) Status() Status {
	return t.status
}

// CurrentOrderID returns the order being served at this table, or nil.
func (t *Table) CurrentOrderID() *kernel.UUID {
	return t.currentOrderID
}

// IsAvailable reports whether the table is selectable for a new order.
func (t *Table) IsAvailable() bool {
	return t.status == Available
}

// SetStatus moves the table to any valid floor state. There is no transition
// order between table statuses. Leaving Occupied clears the order link.
func (t *Table) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	if status != Occupied {
		t.currentOrderID = nil
	}
	return nil
}

// AssignOrder ties an order to the table for the floor overview.
func (t *Table) AssignOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	t.currentOrderID = &orderID
	return nil
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}
