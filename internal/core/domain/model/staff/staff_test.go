package staff_test

import (
	"testing"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/staff"
	"jikoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create active member", func(t *testing.T) {
		m, err := staff.NewMember(validID, "Alice Johnson", staff.Manager, "alice@jikoni.example", "555-0101")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "Alice Johnson", m.Name())
		assert.Equal(t, staff.Manager, m.Role())
		assert.Equal(t, "alice@jikoni.example", m.Email())
		assert.Equal(t, "555-0101", m.Phone())
		assert.True(t, m.IsActive())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		m, err := staff.NewMember(validID, "", staff.Chef, "", "")

		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		m, err := staff.NewMember(validID, "Bob Wilson", staff.UnknownRole, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, m)
	})

	t.Run("nil member fails validation", func(t *testing.T) {
		var m *staff.Member

		require.Error(t, m.Validate())
	})
}

func TestMember_SetActive(t *testing.T) {
	t.Run("toggles the active flag", func(t *testing.T) {
		m, _ := staff.NewMember(kernel.NewUUID(), "Carol Davis", staff.Waiter, "", "")

		m.SetActive(false)
		assert.False(t, m.IsActive())

		m.SetActive(true)
		assert.True(t, m.IsActive())
	})
}

func TestRole(t *testing.T) {
	t.Run("String returns lowercase names", func(t *testing.T) {
		assert.Equal(t, "waiter", staff.Waiter.String())
		assert.Equal(t, "chef", staff.Chef.String())
		assert.Equal(t, "manager", staff.Manager.String())
		assert.Equal(t, "host", staff.Host.String())
		assert.Equal(t, "unknown", staff.UnknownRole.String())
	})

	t.Run("RoleFromString round-trips", func(t *testing.T) {
		for _, role := range []staff.Role{staff.Waiter, staff.Chef, staff.Manager, staff.Host} {
			parsed, err := staff.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("RoleFromString rejects unknown names", func(t *testing.T) {
		_, err := staff.RoleFromString("dishwasher")

		require.Error(t, err)
	})
}
