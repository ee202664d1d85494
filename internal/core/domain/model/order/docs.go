// Package order contains the Order aggregate, its LineItem value object, and
// the Status state machine.
//
// An order's status moves through a strict linear chain:
//
//	pending -> preparing -> ready -> served -> paid
//
// Advance walks that chain one step at a time; SetStatus is the unrestricted
// manual override used by staff status pickers. Both refresh the order's
// updated timestamp.
package order
