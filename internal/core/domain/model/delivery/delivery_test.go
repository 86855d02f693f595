package delivery_test

import (
	"testing"
	"time"

	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newScheduledDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)
	require.NoError(t, err)
	return d
}

func mustPosition(t *testing.T, lat, long float64) kernel.Position {
	t.Helper()
	p, err := kernel.NewPosition(lat, long)
	require.NoError(t, err)
	return p
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts scheduled", func(t *testing.T) {
		claimID := kernel.NewUUID()
		listingID := kernel.NewUUID()

		d, err := delivery.NewDelivery(kernel.NewUUID(), claimID, listingID, now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Scheduled, d.Status())
		assert.True(t, claimID.IsEqual(d.ClaimID()))
		assert.True(t, listingID.IsEqual(d.ListingID()))
		assert.Nil(t, d.Position())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("requires claim and listing", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "claim")
		assert.Contains(t, err.Error(), "listing")
	})
}

func TestDelivery_Advance(t *testing.T) {
	t.Run("through every state", func(t *testing.T) {
		d := newScheduledDelivery(t)

		require.NoError(t, d.Advance(delivery.OutForDelivery, "Sam", now.Add(time.Minute)))
		assert.Equal(t, "Sam", d.Agent())

		doneAt := now.Add(time.Hour)
		require.NoError(t, d.Advance(delivery.Delivered, "", doneAt))
		assert.True(t, d.IsDelivered())
		assert.Equal(t, "Sam", d.Agent())
		assert.Equal(t, doneAt, *d.DeliveredAt())
	})

	t.Run("self pickup skips out for delivery", func(t *testing.T) {
		d := newScheduledDelivery(t)

		require.NoError(t, d.Advance(delivery.Delivered, "", now))
		assert.True(t, d.IsDelivered())
	})

	t.Run("same state is rejected", func(t *testing.T) {
		d := newScheduledDelivery(t)
		require.ErrorIs(t, d.Advance(delivery.Scheduled, "", now), errs.ErrInvalidTransition)
	})

	t.Run("backward is rejected", func(t *testing.T) {
		d := newScheduledDelivery(t)
		require.NoError(t, d.Advance(delivery.OutForDelivery, "", now))

		require.ErrorIs(t, d.Advance(delivery.Scheduled, "", now), errs.ErrInvalidTransition)
		assert.Equal(t, delivery.OutForDelivery, d.Status())
	})

	t.Run("delivered is immutable", func(t *testing.T) {
		d := newScheduledDelivery(t)
		require.NoError(t, d.Advance(delivery.Delivered, "", now))

		require.ErrorIs(t, d.Advance(delivery.Delivered, "", now), errs.ErrInvalidTransition)
		require.ErrorIs(t, d.Advance(delivery.OutForDelivery, "", now), errs.ErrInvalidTransition)
		require.ErrorIs(t, d.UpdatePosition(mustPosition(t, 1, 1), nil, now), errs.ErrInvalidTransition)
	})

	t.Run("unknown target is invalid", func(t *testing.T) {
		d := newScheduledDelivery(t)
		require.ErrorIs(t, d.Advance(delivery.Unknown, "", now), errs.ErrValueIsInvalid)
	})
}

func TestDelivery_UpdatePosition(t *testing.T) {
	t.Run("only while out for delivery", func(t *testing.T) {
		d := newScheduledDelivery(t)

		err := d.UpdatePosition(mustPosition(t, 52.5, 13.4), nil, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, d.Position())
	})

	t.Run("records position and eta", func(t *testing.T) {
		d := newScheduledDelivery(t)
		require.NoError(t, d.Advance(delivery.OutForDelivery, "", now))
		eta := now.Add(20 * time.Minute)

		require.NoError(t, d.UpdatePosition(mustPosition(t, 52.5, 13.4), &eta, now.Add(time.Minute)))
		assert.InDelta(t, 52.5, d.Position().Latitude(), 0)
		assert.Equal(t, eta, *d.ETA())

		require.NoError(t, d.UpdatePosition(mustPosition(t, 52.6, 13.5), nil, now.Add(2*time.Minute)))
		assert.InDelta(t, 13.5, d.Position().Longitude(), 0)
		assert.Equal(t, eta, *d.ETA())
	})

	t.Run("rejects unconstructed position", func(t *testing.T) {
		d := newScheduledDelivery(t)
		require.NoError(t, d.Advance(delivery.OutForDelivery, "", now))

		require.ErrorIs(t, d.UpdatePosition(kernel.Position{}, nil, now), kernel.ErrPositionIsNotConstructed)
	})
}
