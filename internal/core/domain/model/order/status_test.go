package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Completed, "Completed"},
		{order.Cancelled, "Cancelled"},
		{order.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Completed, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_statuses", func(t *testing.T) {
		for _, want := range []order.Status{order.Pending, order.Completed, order.Cancelled} {
			got, ok := order.StatusFromString(want.String())
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects_unrecognized_input", func(t *testing.T) {
		got, ok := order.StatusFromString("Washing")
		assert.False(t, ok)
		assert.Equal(t, order.Unknown, got)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("pending_completes", func(t *testing.T) {
		next, err := order.Pending.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("terminal_states_fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Completed, order.Cancelled, order.Unknown} {
			_, err := s.Complete()
			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending_cancels", func(t *testing.T) {
		next, err := order.Pending.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("terminal_states_fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Completed, order.Cancelled, order.Unknown} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}
