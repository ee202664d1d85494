package commands

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/guard"
)

var (
	ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
		"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
	)
)

// SetMenuItemAvailabilityCommand represents a request to put a menu item on
// or pull it off the menu.
type SetMenuItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetMenuItemAvailabilityCommand creates a command to flip an item's
// availability.
func NewSetMenuItemAvailabilityCommand(itemID kernel.UUID, available bool) (SetMenuItemAvailabilityCommand, error) {
	cmd := SetMenuItemAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

// ItemID returns the item being flipped.
func (c SetMenuItemAvailabilityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Available returns the target availability.
func (c SetMenuItemAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetMenuItemAvailabilityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
