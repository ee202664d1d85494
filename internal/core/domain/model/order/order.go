package order

import (
	"errors"
	"time"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order would be created without
	// any line items.
	ErrOrderHasNoLines = errors.New("order must contain at least one line item")

	// ErrOrderAlreadyPaid is returned by Advance on a terminal order. It is
	// non-fatal bookkeeping: the order is unchanged and the caller decides
	// whether to surface or swallow it.
	ErrOrderAlreadyPaid = errors.New("order is already paid")
)

// Order is the aggregate root for a placed order. It owns an immutable
// snapshot of the cart's line items and walks the status chain until Paid.
//
// Order maintains these invariants:
//   - Must have valid order and table identifiers
//   - Holds at least one line item; the snapshot never changes after placement
//   - Total always equals the sum of line subtotals (computed at creation)
//   - Status changes refresh the updated timestamp
//   - Can only be created through NewOrder
type Order struct {
	id      kernel.UUID
	tableID kernel.UUID

	// lines is the immutable snapshot taken from the cart at placement
	lines []LineItem

	// status is the current lifecycle state
	status Status

	// total is derived from lines at creation, cached here
	total kernel.Money

	createdAt time.Time
	updatedAt time.Time

	// customerName is optional; empty means a walk-in guest
	customerName string

	// notes is an optional order-level note
	notes string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order in Pending status from a cart's line snapshot.
// The lines slice is copied; the caller's slice stays independent. The total
// is computed here and never recomputed, since the snapshot is immutable.
func NewOrder(
	id kernel.UUID,
	tableID kernel.UUID,
	lines []LineItem,
	customerName string,
	notes string,
) (*Order, error) {
	if err := errors.Join(
		validateID("orderID", id),
		validateID("tableID", tableID),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	snapshot := make([]LineItem, len(lines))
	copy(snapshot, lines)

	total := kernel.Money{}
	for _, line := range snapshot {
		total = total.Add(line.Subtotal())
	}

	now := time.Now()
	return &Order{
		id:            id,
		tableID:       tableID,
		lines:         snapshot,
		status:        Pending,
		total:         total,
		createdAt:     now,
		updatedAt:     now,
		customerName:  customerName,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the identifier of the table the order was placed for.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// Lines returns a copy of the line item snapshot.
func (o *Order) Lines() []LineItem {
	lines := make([]LineItem, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total, computed from the snapshot at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed status.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CustomerName returns the optional customer name; empty for walk-ins.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Notes returns the optional order-level note.
func (o *Order) Notes() string {
	return o.notes
}

// ItemCount returns the sum of quantities across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, line := range o.lines {
		count += line.Quantity()
	}
	return count
}

// Advance moves the order one step along the status chain and refreshes the
// updated timestamp. On a Paid order it returns ErrOrderAlreadyPaid and
// leaves the order unchanged.
//
// This is the strict path used by the one-tap "mark next" action on order
// cards. Manual status pickers use SetStatus instead.
func (o *Order) Advance() error {
	next, ok := o.status.Next()
	if !ok {
		return ErrOrderAlreadyPaid
	}

	o.status = next
	o.updatedAt = time.Now()
	return nil
}

// SetStatus moves the order to any valid status, regardless of chain order,
// and refreshes the updated timestamp. This is the administrative override
// behind manual status pickers; Advance is the strict path.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = time.Now()
	return nil
}

func validateID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}

func validateLines(lines []LineItem) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}
