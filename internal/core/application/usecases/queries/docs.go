// Package queries contains the read side of the application core.
//
// Each query is a guarded struct created through its constructor, paired
// with a handler that reads through the ports and maps aggregates into
// flat response read models. Queries never mutate state.
package queries
