package services_test

import (
	"testing"
	"time"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newListing(t *testing.T) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), listing.Details{
		Title: "Bread", Quantity: 5,
	}, now.Add(time.Hour), now)
	require.NoError(t, err)
	return l
}

func newClaim(t *testing.T, l *listing.Listing) *claim.Claim {
	t.Helper()
	c, err := claim.NewClaim(kernel.NewUUID(), l.ID(), kernel.NewUUID(), "", nil, now)
	require.NoError(t, err)
	return c
}

func TestClaimArbiter_EnsureClaimable(t *testing.T) {
	arbiter := services.NewClaimArbiter()

	t.Run("available listing without claims", func(t *testing.T) {
		l := newListing(t)
		require.NoError(t, arbiter.EnsureClaimable(l, kernel.NewUUID(), nil))
	})

	t.Run("donor cannot claim own listing", func(t *testing.T) {
		l := newListing(t)
		require.ErrorIs(t, arbiter.EnsureClaimable(l, l.DonorID(), nil), errs.ErrNotPermitted)
	})

	t.Run("active claim blocks new claims", func(t *testing.T) {
		l := newListing(t)
		existing := newClaim(t, l)

		err := arbiter.EnsureClaimable(l, kernel.NewUUID(), []*claim.Claim{existing})
		require.ErrorIs(t, err, errs.ErrListingUnavailable)
	})

	t.Run("rejected claims do not block", func(t *testing.T) {
		l := newListing(t)
		rejected := newClaim(t, l)
		require.NoError(t, rejected.Reject(now))

		require.NoError(t, arbiter.EnsureClaimable(l, kernel.NewUUID(), []*claim.Claim{rejected}))
	})

	t.Run("expired listing is unavailable", func(t *testing.T) {
		l := newListing(t)
		require.NoError(t, l.MarkExpired(now))

		require.ErrorIs(t, arbiter.EnsureClaimable(l, kernel.NewUUID(), nil), errs.ErrListingUnavailable)
	})
}

func TestClaimArbiter_Accept(t *testing.T) {
	arbiter := services.NewClaimArbiter()

	t.Run("accepts and rejects pending siblings", func(t *testing.T) {
		// given
		l := newListing(t)
		chosen := newClaim(t, l)
		pendingSibling := newClaim(t, l)
		rejectedSibling := newClaim(t, l)
		require.NoError(t, rejectedSibling.Reject(now))

		// when
		decision, err := arbiter.Accept(l, chosen, []*claim.Claim{chosen, pendingSibling, rejectedSibling}, now)

		// then
		require.NoError(t, err)
		assert.False(t, decision.AlreadyAccepted)
		assert.Equal(t, claim.Accepted, chosen.Status())
		assert.Equal(t, listing.Claimed, l.Status())
		assert.True(t, l.IsClaimedBy(chosen.ID()))
		assert.Equal(t, claim.Rejected, pendingSibling.Status())
		require.Len(t, decision.Rejected, 1)
		assert.True(t, decision.Rejected[0].IsEqual(pendingSibling))
	})

	t.Run("re-accepting is idempotent", func(t *testing.T) {
		l := newListing(t)
		c := newClaim(t, l)
		_, err := arbiter.Accept(l, c, nil, now)
		require.NoError(t, err)

		decision, err := arbiter.Accept(l, c, nil, now.Add(time.Minute))

		require.NoError(t, err)
		assert.True(t, decision.AlreadyAccepted)
		assert.Equal(t, now, *c.DecidedAt())
	})

	t.Run("sibling accept after the first fails with listing unavailable", func(t *testing.T) {
		l := newListing(t)
		first := newClaim(t, l)
		second := newClaim(t, l)

		_, err := arbiter.Accept(l, first, nil, now)
		require.NoError(t, err)

		_, err = arbiter.Accept(l, second, nil, now)
		require.ErrorIs(t, err, errs.ErrListingUnavailable)
		assert.Equal(t, claim.Pending, second.Status())
	})

	t.Run("non pending claim on available listing is an invalid transition", func(t *testing.T) {
		l := newListing(t)
		c := newClaim(t, l)
		require.NoError(t, c.Reject(now))

		_, err := arbiter.Accept(l, c, nil, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, listing.Available, l.Status())
	})

	t.Run("claim of another listing is rejected", func(t *testing.T) {
		l := newListing(t)
		other := newListing(t)
		c := newClaim(t, other)

		_, err := arbiter.Accept(l, c, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestClaimArbiter_Complete(t *testing.T) {
	arbiter := services.NewClaimArbiter()

	t.Run("delivers listing and completes claim", func(t *testing.T) {
		l := newListing(t)
		c := newClaim(t, l)
		_, err := arbiter.Accept(l, c, nil, now)
		require.NoError(t, err)

		require.NoError(t, arbiter.Complete(l, c, now))
		assert.Equal(t, listing.Delivered, l.Status())
		assert.Equal(t, claim.Completed, c.Status())
	})

	t.Run("expired listing cannot be delivered", func(t *testing.T) {
		l := newListing(t)
		c := newClaim(t, l)
		_, err := arbiter.Accept(l, c, nil, now)
		require.NoError(t, err)
		require.True(t, l.ExpireIfDue(l.ExpiresAt().Add(time.Second)))

		require.ErrorIs(t, arbiter.Complete(l, c, now), errs.ErrInvalidTransition)
		assert.Equal(t, claim.Accepted, c.Status())
	})

	t.Run("claim that was not accepted", func(t *testing.T) {
		l := newListing(t)
		c := newClaim(t, l)

		require.ErrorIs(t, arbiter.Complete(l, c, now), errs.ErrInvalidTransition)
	})
}

func TestClaimArbiter_CloseExpired(t *testing.T) {
	arbiter := services.NewClaimArbiter()

	t.Run("rejects pending claims only", func(t *testing.T) {
		l := newListing(t)
		accepted, pending, declined := newClaim(t, l), newClaim(t, l), newClaim(t, l)
		require.NoError(t, declined.Reject(now))
		_, err := arbiter.Accept(l, accepted, nil, now)
		require.NoError(t, err)
		require.True(t, l.ExpireIfDue(l.ExpiresAt().Add(time.Second)))

		rejected, err := arbiter.CloseExpired(l, []*claim.Claim{accepted, pending, declined}, now)
		require.NoError(t, err)
		require.Len(t, rejected, 1)
		assert.True(t, rejected[0].IsEqual(pending))
		assert.Equal(t, claim.Rejected, pending.Status())
		assert.Equal(t, claim.Accepted, accepted.Status())
	})

	t.Run("listing that is not expired", func(t *testing.T) {
		l := newListing(t)
		c := newClaim(t, l)

		_, err := arbiter.CloseExpired(l, []*claim.Claim{c}, now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, claim.Pending, c.Status())
	})
}
