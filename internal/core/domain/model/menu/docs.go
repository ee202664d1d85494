// Package menu contains the Item entity that makes up the restaurant's
// catalog. The cart and order aggregates consult the catalog read-only:
// they check availability and capture the unit price at add time, but the
// catalog itself is only mutated through menu management commands.
package menu
