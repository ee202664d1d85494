package order

import (
	"fmt"

	"jikoni/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions form a strict linear chain with no branching, skipping,
// or backward movement:
//
//	Pending ──> Preparing ──> Ready ──> Served ──> Paid
//
// Paid is terminal. The chain is defined once in statusFlow; adding a state
// later is a one-line change there.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	Pending

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is plated and waiting to be served.
	Ready

	// Served means the order has been delivered to the table.
	Served

	// Paid is the final status; the order is settled and closed.
	Paid
)

// statusFlow is the single source of truth for the status progression.
// Next and AllStatuses both derive from it.
var statusFlow = []Status{Pending, Preparing, Ready, Served, Paid}

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
		Paid:      "paid",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
		Paid:      "paid",
	}
}

// StatusFromString parses a status name as it appears in requests
// ("pending", "preparing", "ready", "served", "paid").
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", name))
}

// Validate checks if the Status value is valid. Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the successor in the status chain. The second return value is
// false when the status is terminal (Paid) or not part of the chain.
func (s Status) Next() (Status, bool) {
	for i, status := range statusFlow {
		if status == s {
			if i == len(statusFlow)-1 {
				return Unknown, false
			}
			return statusFlow[i+1], true
		}
	}
	return Unknown, false
}

// IsTerminal reports whether the status is the final state in the chain.
func (s Status) IsTerminal() bool {
	return s == statusFlow[len(statusFlow)-1]
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	flow := make([]Status, len(statusFlow))
	copy(flow, statusFlow)
	return flow
}
