// Package table contains the dining Table entity and its Status value
// object. Table status is driven by the floor staff (seating, reservations,
// cleaning); the ordering core only reads it to decide which tables are
// selectable when a cart is placed.
package table
