package commands

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
	"jikoni/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand represents a request to add a new dish or drink to
// the menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Money
	category    string
	prepMinutes int

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item. The
// description may be empty; everything else is validated here so a malformed
// request never reaches the domain.
func NewCreateMenuItemCommand(
	name string,
	description string,
	price kernel.Money,
	category string,
	prepMinutes int,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrepMinutes(prepMinutes),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Name returns the display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the menu description; may be empty.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the menu section label.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// PrepMinutes returns the preparation time estimate in minutes.
func (c CreateMenuItemCommand) PrepMinutes() int {
	return c.prepMinutes
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}

func (c *CreateMenuItemCommand) setPrepMinutes(prepMinutes int) error {
	if prepMinutes <= 0 {
		return errs.NewValueIsInvalidError("prepMinutes")
	}
	c.prepMinutes = prepMinutes
	return nil
}
