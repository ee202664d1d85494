// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated, immutable request object paired with a handler that loads the
// affected aggregate from its port, applies the domain operation, and saves
// the result. Handlers validate the command first and leave state untouched
// when any step fails.
package commands
