package commands

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
	"jikoni/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand represents a request to edit an existing menu item.
// Availability is not part of the edit; it has its own command.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	prepMinutes int

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	prepMinutes int,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrepMinutes(prepMinutes),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the item being edited.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new menu description; may be empty.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the new menu section label.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// PrepMinutes returns the new preparation time estimate in minutes.
func (c UpdateMenuItemCommand) PrepMinutes() int {
	return c.prepMinutes
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}

func (c *UpdateMenuItemCommand) setPrepMinutes(prepMinutes int) error {
	if prepMinutes <= 0 {
		return errs.NewValueIsInvalidError("prepMinutes")
	}
	c.prepMinutes = prepMinutes
	return nil
}
