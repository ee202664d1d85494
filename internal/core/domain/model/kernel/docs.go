// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. These types are immutable, validated at
// construction, and safe to pass by value between aggregates.
package kernel
