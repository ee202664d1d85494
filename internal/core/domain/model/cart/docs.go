// Package cart contains the Cart aggregate that accumulates a guest's
// selections before an order is placed. A cart belongs to one ordering
// session, merges repeated additions of the same (menu item, note) pair, and
// is cleared once it has been converted into an order.
package cart
