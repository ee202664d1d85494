// Package staff contains the restaurant staff roster: members with a role
// and an active flag. The roster is display data for staff management
// screens; the ordering core never consults it.
package staff

import (
	"errors"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"
)

// ErrMemberIsNotConstructed is returned when a Member instance was not
// created through the NewMember factory method.
var ErrMemberIsNotConstructed = errors.New("staff Member must be created via NewMember constructor")

// Role is a staff member's job on the floor or in the kitchen.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	Waiter
	Chef
	Manager
	Host
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Waiter:      "waiter",
		Chef:        "chef",
		Manager:     "manager",
		Host:        "host",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Waiter:  "waiter",
		Chef:    "chef",
		Manager: "manager",
		Host:    "host",
	}
}

// RoleFromString parses a role name ("waiter", "chef", "manager", "host").
func RoleFromString(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid staff role", name))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid staff role", r))
	}
	return nil
}

// String returns the lowercase role name. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Member is one person on the staff roster.
type Member struct {
	id     kernel.UUID
	name   string
	role   Role
	email  string
	phone  string
	active bool

	isConstructed bool
}

// NewMember creates a staff Member with validation. New members start active.
func NewMember(id kernel.UUID, name string, role Role, email, phone string) (*Member, error) {
	m := &Member{
		email:         email,
		phone:         phone,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setRole(role),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Member was constructed through NewMember.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}
	return nil
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Role returns the member's job.
func (m *Member) Role() Role {
	return m.role
}

// Email returns the member's contact email.
func (m *Member) Email() string {
	return m.email
}

// Phone returns the member's contact phone number.
func (m *Member) Phone() string {
	return m.phone
}

// IsActive reports whether the member is currently on the roster.
func (m *Member) IsActive() bool {
	return m.active
}

// SetActive marks the member active or inactive.
func (m *Member) SetActive(active bool) {
	m.active = active
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}
