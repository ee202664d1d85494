package order_test

import (
	"testing"

	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	t.Run("walks the full chain in order", func(t *testing.T) {
		steps := []struct {
			from order.Status
			want order.Status
		}{
			{order.Pending, order.Preparing},
			{order.Preparing, order.Ready},
			{order.Ready, order.Served},
			{order.Served, order.Paid},
		}

		for _, step := range steps {
			next, ok := step.from.Next()

			require.True(t, ok, "expected %s to have a successor", step.from)
			assert.Equal(t, step.want, next)
		}
	})

	t.Run("paid is terminal", func(t *testing.T) {
		_, ok := order.Paid.Next()

		assert.False(t, ok)
		assert.True(t, order.Paid.IsTerminal())
	})

	t.Run("unknown has no successor", func(t *testing.T) {
		_, ok := order.Unknown.Next()

		assert.False(t, ok)
	})

	t.Run("only paid is terminal", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Preparing, order.Ready, order.Served} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Unknown, "unknown"},
		{order.Pending, "pending"},
		{order.Preparing, "preparing"},
		{order.Ready, "ready"},
		{order.Served, "served"},
		{order.Paid, "paid"},
		{order.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("unknown fails", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid name", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("delivered")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAllStatuses(t *testing.T) {
	t.Run("returns the chain in lifecycle order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.Pending, order.Preparing, order.Ready, order.Served, order.Paid},
			order.AllStatuses())
	})

	t.Run("mutating the returned slice does not affect the chain", func(t *testing.T) {
		flow := order.AllStatuses()
		flow[0] = order.Paid

		next, ok := order.Pending.Next()
		require.True(t, ok)
		assert.Equal(t, order.Preparing, next)
	})
}
