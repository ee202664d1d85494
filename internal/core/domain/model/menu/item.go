package menu

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

// Item represents a dish or drink on the menu.
//
// Item maintains these invariants:
//   - Must have a valid unique identifier
//   - Name and category are non-empty
//   - Preparation time is positive (minutes)
//   - Can only be created through NewItem
//
// The available flag gates whether the item may be added to a new cart.
// Carts capture the unit price at add time, so editing an Item's price never
// changes carts or orders built earlier.
type Item struct {
	id kernel.UUID

	// name is the display name, e.g. "Nyama Choma"
	name string

	// description is free text shown on the menu; may be empty
	description string

	// price is the current unit price
	price kernel.Money

	// category is the menu section label, e.g. "Main Course"
	category string

	// available gates whether the item can be added to new carts
	available bool

	// prepMinutes is the kitchen's preparation time estimate
	prepMinutes int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a menu Item with validation. Items start out available;
// use SetAvailable to pull one off the menu.
func NewItem(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	prepMinutes int,
) (*Item, error) {
	item := &Item{
		description:   description,
		price:         price,
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPrepMinutes(prepMinutes),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the menu description; may be empty.
func (i *Item) Description() string {
	return i.description
}

// Price returns the current unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Category returns the menu section label.
func (i *Item) Category() string {
	return i.category
}

// IsAvailable reports whether the item may be added to new carts.
func (i *Item) IsAvailable() bool {
	return i.available
}

// PrepMinutes returns the preparation time estimate in minutes.
func (i *Item) PrepMinutes() int {
	return i.prepMinutes
}

// Update replaces the item's editable fields. Identity and availability are
// untouched; availability changes go through SetAvailable.
func (i *Item) Update(name, description string, price kernel.Money, category string, prepMinutes int) error {
	updated := *i
	if err := errors.Join(
		updated.setName(name),
		updated.setCategory(category),
		updated.setPrepMinutes(prepMinutes),
	); err != nil {
		return err
	}

	updated.description = description
	updated.price = price
	*i = updated
	return nil
}

// SetAvailable sets whether the item may be added to new carts. Carts and
// orders that already hold the item are unaffected.
func (i *Item) SetAvailable(available bool) {
	i.available = available
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setPrepMinutes(prepMinutes int) error {
	if prepMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepMinutes",
			fmt.Errorf("%d is not greater than 0", prepMinutes))
	}
	i.prepMinutes = prepMinutes
	return nil
}
