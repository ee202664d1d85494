package table

import (
	"fmt"

	"jikoni/internal/pkg/errs"
)

// Status represents the floor state of a dining table. Unlike order statuses
// there is no fixed progression: hosts and waiters move tables between these
// states freely as guests arrive, leave, and tables are turned over.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the table is free and selectable for new orders.
	Available

	// Occupied means guests are seated at the table.
	Occupied

	// Reserved means the table is held for an upcoming booking.
	Reserved

	// Cleaning means the table is being turned over and cannot be seated.
	Cleaning
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Occupied:  "occupied",
		Reserved:  "reserved",
		Cleaning:  "cleaning",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Occupied:  "occupied",
		Reserved:  "reserved",
		Cleaning:  "cleaning",
	}
}

// StatusFromString parses a status name as it appears in requests and
// fixtures ("available", "occupied", "reserved", "cleaning").
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid table status", name))
}

// Validate checks if the Status value is valid. Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid table status", s))
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

// AllStatuses returns the valid statuses in display order, used for the
// per-status table counts on the floor overview.
func AllStatuses() []Status {
	return []Status{Available, Occupied, Reserved, Cleaning}
}
