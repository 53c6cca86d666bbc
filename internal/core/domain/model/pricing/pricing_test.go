package pricing_test

import (
	"testing"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("valid_entry", func(t *testing.T) {
		e, err := pricing.NewEntry("Shirt", 20)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "Shirt", e.ItemType())
		assert.InDelta(t, 20.0, e.Price(), 0.001)
	})

	t.Run("zero_price_is_allowed", func(t *testing.T) {
		_, err := pricing.NewEntry("Socks", 0)
		require.NoError(t, err)
	})

	t.Run("empty_item_type_rejected", func(t *testing.T) {
		_, err := pricing.NewEntry("", 20)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		_, err := pricing.NewEntry("Shirt", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestEntry_Validate(t *testing.T) {
	var e pricing.Entry
	require.ErrorIs(t, e.Validate(), pricing.ErrEntryIsNotConstructed)
}

func TestEstimate(t *testing.T) {
	assert.InDelta(t, 60.0, pricing.Estimate(20, 3), 0.001)
	assert.InDelta(t, 150.0, pricing.Estimate(pricing.DefaultUnitPrice, 3), 0.001)
	assert.InDelta(t, 0.0, pricing.Estimate(20, 0), 0.001)
}
