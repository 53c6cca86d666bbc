package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Shirt",
		3,
		20,
		"A",
		"101",
		"9am",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_total_price_from_unit_price", func(t *testing.T) {
		o := newTestOrder(t)

		assert.InDelta(t, 60.0, o.TotalPrice(), 0.001)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Feedback())
	})

	t.Run("validation_failures", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		now := time.Now()

		tests := []struct {
			name  string
			setup func() (*order.Order, error)
		}{
			{"zero_order_id", func() (*order.Order, error) {
				return order.NewOrder(kernel.UUID{}, userID, "Shirt", 1, 20, "A", "101", "9am", now)
			}},
			{"zero_user_id", func() (*order.Order, error) {
				return order.NewOrder(id, kernel.UUID{}, "Shirt", 1, 20, "A", "101", "9am", now)
			}},
			{"empty_item_type", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "", 1, 20, "A", "101", "9am", now)
			}},
			{"non_positive_quantity", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "Shirt", 0, 20, "A", "101", "9am", now)
			}},
			{"negative_unit_price", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "Shirt", 1, -5, "A", "101", "9am", now)
			}},
			{"empty_hostel", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "Shirt", 1, 20, "", "101", "9am", now)
			}},
			{"empty_room", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "Shirt", 1, 20, "A", "", "9am", now)
			}},
			{"empty_slot", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "Shirt", 1, 20, "A", "101", "", now)
			}},
			{"zero_created_at", func() (*order.Order, error) {
				return order.NewOrder(id, userID, "Shirt", 1, 20, "A", "101", "9am", time.Time{})
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				o, err := tt.setup()
				require.Error(t, err)
				assert.Nil(t, o)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("pending_order_completes", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("completed_order_cannot_complete_again", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Complete())

		err := o.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancelled_order_cannot_complete", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending_order_cancels", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("completed_order_cannot_cancel", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Complete())

		err := o.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_AttachFeedback(t *testing.T) {
	t.Run("attaches_and_overwrites", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AttachFeedback("good service"))
		require.NotNil(t, o.Feedback())
		assert.Equal(t, "good service", *o.Feedback())

		require.NoError(t, o.AttachFeedback("even better"))
		assert.Equal(t, "even better", *o.Feedback())
	})

	t.Run("allowed_in_terminal_states", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.AttachFeedback("cancelled but fine"))
		assert.Equal(t, "cancelled but fine", *o.Feedback())
	})

	t.Run("empty_feedback_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.AttachFeedback(""), errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state_without_recomputing_price", func(t *testing.T) {
		feedback := "late pickup"
		created := time.Now().Add(-time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"Jeans", 2, order.Completed, 75, "B", "202", "5pm", created, &feedback,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		// 75 is kept as stored even though no unit price would produce it
		assert.InDelta(t, 75.0, o.TotalPrice(), 0.001)
		require.NotNil(t, o.Feedback())
		assert.Equal(t, feedback, *o.Feedback())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"Jeans", 2, order.Unknown, 75, "B", "202", "5pm", time.Now(), nil,
		)
		require.Error(t, err)
	})

	t.Run("rejects_negative_total_price", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"Jeans", 2, order.Pending, -1, "B", "202", "5pm", time.Now(), nil,
		)
		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
