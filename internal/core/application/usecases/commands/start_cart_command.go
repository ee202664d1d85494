package commands

import (
	"errors"

	"jikoni/internal/pkg/guard"
)

var (
	ErrStartCartCommandIsNotConstructed = errors.New(
		"StartCartCommand must be created via NewStartCartCommand constructor",
	)
)

// StartCartCommand represents a request to open a new ordering session with
// an empty cart. It carries no data; the session identifier is minted by the
// handler.
type StartCartCommand struct {
	guard guard.ConstructorGuard
}

// NewStartCartCommand creates a command to start an ordering session.
func NewStartCartCommand() StartCartCommand {
	return StartCartCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c StartCartCommand) Validate() error {
	return c.guard.Validate(ErrStartCartCommandIsNotConstructed)
}
