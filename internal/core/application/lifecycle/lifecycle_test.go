package lifecycle_test

import (
	"sync"
	"testing"
	"time"

	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) createListing(t *testing.T, donor kernel.Actor, ttl time.Duration) *listing.Listing {
	t.Helper()

	cmd, err := commands.NewCreateListingCommand(kernel.NewUUID(), donor, listing.Details{
		Title:          "Vegetable curry",
		Quantity:       5,
		PickupLocation: "Community kitchen, Elm Road",
	}, h.clock.Now().Add(ttl))
	require.NoError(t, err)

	l, err := h.orchestrator.CreateListing(t.Context(), cmd)
	require.NoError(t, err)
	return l
}

func (h *harness) requestClaim(t *testing.T, claimant kernel.Actor, listingID kernel.UUID) (*claim.Claim, error) {
	t.Helper()

	cmd, err := commands.NewRequestClaimCommand(kernel.NewUUID(), claimant, listingID, "", nil)
	require.NoError(t, err)
	return h.orchestrator.RequestClaim(t.Context(), cmd)
}

func (h *harness) decide(t *testing.T, decider kernel.Actor, claimID kernel.UUID, accept bool) (lifecycle.AcceptedClaim, error) {
	t.Helper()

	cmd, err := commands.NewDecideClaimCommand(decider, claimID, accept)
	require.NoError(t, err)
	return h.orchestrator.DecideClaim(t.Context(), cmd)
}

func (h *harness) advance(t *testing.T, actor kernel.Actor, deliveryID kernel.UUID, status string) (*delivery.Delivery, error) {
	t.Helper()

	cmd, err := commands.NewUpdateDeliveryCommand(actor, deliveryID, commands.DeliveryUpdate{Status: status})
	require.NoError(t, err)
	return h.orchestrator.UpdateDelivery(t.Context(), cmd)
}

func (h *harness) review(t *testing.T, reviewer kernel.Actor, claimID, revieweeID kernel.UUID, rating int) (*reputation.Review, error) {
	t.Helper()

	cmd, err := commands.NewRecordReviewCommand(kernel.NewUUID(), reviewer, claimID, revieweeID, rating, "thanks")
	require.NoError(t, err)
	return h.orchestrator.RecordReview(t.Context(), cmd)
}

func (h *harness) points(t *testing.T, userID kernel.UUID) int {
	t.Helper()

	total, err := h.orchestrator.TotalPoints(t.Context(), userID)
	require.NoError(t, err)
	return total
}

func TestFullLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()
	donor := newActor(t, kernel.RoleDonor)
	claimant := newActor(t, kernel.RoleRecipient)

	l := h.createListing(t, donor, time.Hour)
	assert.Equal(t, listing.Available, l.Status())

	c, err := h.requestClaim(t, claimant, l.ID())
	require.NoError(t, err)
	assert.Equal(t, claim.Pending, c.Status())

	got, err := h.orchestrator.GetListing(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, listing.Available, got.Status(), "a pending claim does not reserve the listing")

	h.clock.Advance(time.Minute)
	accepted, err := h.decide(t, donor, c.ID(), true)
	require.NoError(t, err)
	assert.Equal(t, claim.Accepted, accepted.Claim.Status())
	require.NotNil(t, accepted.Delivery)
	assert.Equal(t, delivery.Scheduled, accepted.Delivery.Status())

	got, err = h.orchestrator.GetListing(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, listing.Claimed, got.Status())
	assert.True(t, got.IsClaimedBy(c.ID()))

	h.clock.Advance(time.Minute)
	d, err := h.advance(t, donor, accepted.Delivery.ID(), "Out for Delivery")
	require.NoError(t, err)
	assert.Equal(t, delivery.OutForDelivery, d.Status())

	position, err := commands.NewUpdateDeliveryCommand(donor, d.ID(), commands.DeliveryUpdate{
		Agent:     "bike-3",
		Latitude:  ptr(51.5072),
		Longitude: ptr(-0.1276),
	})
	require.NoError(t, err)
	d, err = h.orchestrator.UpdateDelivery(ctx, position)
	require.NoError(t, err)
	require.NotNil(t, d.Position())

	_, err = h.review(t, claimant, c.ID(), donor.ID(), 5)
	require.ErrorIs(t, err, errs.ErrNotEligible, "no review before delivery")

	h.clock.Advance(10 * time.Minute)
	d, err = h.advance(t, claimant, d.ID(), "Delivered")
	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, d.Status())
	require.NotNil(t, d.DeliveredAt())

	got, err = h.orchestrator.GetListing(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, listing.Delivered, got.Status())

	completed, err := h.orchestrator.GetClaim(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, claim.Completed, completed.Status())
	require.NotNil(t, completed.CompletedAt())

	assert.Equal(t, 10, h.points(t, donor.ID()))
	assert.Equal(t, 5, h.points(t, claimant.ID()))

	r, err := h.review(t, claimant, c.ID(), donor.ID(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating().Int())
	assert.Equal(t, 15, h.points(t, donor.ID()))

	_, err = h.review(t, claimant, c.ID(), donor.ID(), 4)
	require.ErrorIs(t, err, errs.ErrDuplicateReview)

	_, err = h.review(t, donor, c.ID(), claimant.ID(), 4)
	require.NoError(t, err, "the donor may review the claimant once as well")
	assert.Equal(t, 9, h.points(t, claimant.ID()))

	report, err := h.orchestrator.SettlePendingRewards(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, report.Settled+report.Failed, "rewards were settled right after delivery")
}

func TestDeliveredIsTerminal(t *testing.T) {
	h := newHarness(t)
	donor := newActor(t, kernel.RoleDonor)
	claimant := newActor(t, kernel.RoleNGO)

	l := h.createListing(t, donor, time.Hour)
	c, err := h.requestClaim(t, claimant, l.ID())
	require.NoError(t, err)
	accepted, err := h.decide(t, donor, c.ID(), true)
	require.NoError(t, err)

	_, err = h.advance(t, donor, accepted.Delivery.ID(), "Delivered")
	require.NoError(t, err, "self pickup skips OutForDelivery")

	for _, status := range []string{"Delivered", "OutForDelivery", "Scheduled"} {
		_, err = h.advance(t, donor, accepted.Delivery.ID(), status)
		require.ErrorIs(t, err, errs.ErrInvalidTransition, status)
	}

	_, err = h.decide(t, donor, c.ID(), false)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	h.clock.Advance(2 * time.Hour)
	got, err := h.orchestrator.GetListing(t.Context(), l.ID())
	require.NoError(t, err)
	assert.Equal(t, listing.Delivered, got.Status(), "expiry never overrides Delivered")

	_, err = h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
	require.ErrorIs(t, err, errs.ErrListingUnavailable)
}

func TestConcurrentClaimRequestsOpenOneClaim(t *testing.T) {
	h := newHarness(t)
	donor := newActor(t, kernel.RoleDonor)
	l := h.createListing(t, donor, time.Hour)

	const claimants = 6
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		opened      []*claim.Claim
		unavailable int
	)
	for range claimants {
		claimant := newActor(t, kernel.RoleRecipient)
		wg.Add(1)
		go func() {
			defer wg.Done()

			c, err := h.requestClaim(t, claimant, l.ID())

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				opened = append(opened, c)
				return
			}
			if assert.ErrorIs(t, err, errs.ErrListingUnavailable) {
				unavailable++
			}
		}()
	}
	wg.Wait()

	require.Len(t, opened, 1)
	assert.Equal(t, claimants-1, unavailable)
}

func TestConcurrentAcceptsProduceOneAcceptedClaim(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()
	donor := newActor(t, kernel.RoleDonor)
	l := h.createListing(t, donor, time.Hour)

	// Two claims pending at once, as left by an earlier request policy.
	repo := h.factory.Create().ClaimRepository()
	first, err := claim.NewClaim(kernel.NewUUID(), l.ID(), kernel.NewUUID(), "", nil, startTime)
	require.NoError(t, err)
	second, err := claim.NewClaim(kernel.NewUUID(), l.ID(), kernel.NewUUID(), "", nil, startTime.Add(time.Second))
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	var (
		wg      sync.WaitGroup
		results = make([]error, 2)
	)
	for i, c := range []*claim.Claim{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = h.decide(t, donor, c.ID(), true)
		}()
	}
	wg.Wait()

	var accepted, lost int
	for _, err := range results {
		if err == nil {
			accepted++
			continue
		}
		if assert.ErrorIs(t, err, errs.ErrListingUnavailable) {
			lost++
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, lost)

	claims, err := h.factory.Create().ClaimRepository().FindByListing(ctx, l.ID())
	require.NoError(t, err)
	statuses := map[claim.Status]int{}
	for _, c := range claims {
		statuses[c.Status()]++
	}
	assert.Equal(t, map[claim.Status]int{claim.Accepted: 1, claim.Rejected: 1}, statuses)
}

func TestFirstDecidedAcceptWins(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()
	donor := newActor(t, kernel.RoleDonor)
	l := h.createListing(t, donor, time.Hour)

	repo := h.factory.Create().ClaimRepository()
	first, err := claim.NewClaim(kernel.NewUUID(), l.ID(), kernel.NewUUID(), "", nil, startTime)
	require.NoError(t, err)
	sibling, err := claim.NewClaim(kernel.NewUUID(), l.ID(), kernel.NewUUID(), "", nil, startTime)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, sibling))

	accepted, err := h.decide(t, donor, first.ID(), true)
	require.NoError(t, err)
	require.Len(t, accepted.Rejected, 1)
	assert.Equal(t, sibling.ID(), accepted.Rejected[0].ID())

	_, err = h.decide(t, donor, sibling.ID(), true)
	require.ErrorIs(t, err, errs.ErrListingUnavailable)

	again, err := h.decide(t, donor, first.ID(), true)
	require.NoError(t, err, "re-accepting the winning claim is idempotent")
	require.NotNil(t, again.Delivery)
	assert.Equal(t, accepted.Delivery.ID(), again.Delivery.ID())
}

func TestRejectLeavesListingAvailable(t *testing.T) {
	h := newHarness(t)
	donor := newActor(t, kernel.RoleDonor)
	l := h.createListing(t, donor, time.Hour)

	c, err := h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
	require.NoError(t, err)

	rejected, err := h.decide(t, donor, c.ID(), false)
	require.NoError(t, err)
	assert.Equal(t, claim.Rejected, rejected.Claim.Status())
	assert.Nil(t, rejected.Delivery)

	_, err = h.decide(t, donor, c.ID(), true)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	got, err := h.orchestrator.GetListing(t.Context(), l.ID())
	require.NoError(t, err)
	assert.Equal(t, listing.Available, got.Status())

	_, err = h.requestClaim(t, newActor(t, kernel.RoleNGO), l.ID())
	require.NoError(t, err, "a rejected claim frees the listing")
}

func TestLazyExpiry(t *testing.T) {
	t.Run("available listing", func(t *testing.T) {
		h := newHarness(t)
		donor := newActor(t, kernel.RoleDonor)
		l := h.createListing(t, donor, time.Hour)
		c, err := h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
		require.NoError(t, err)

		h.clock.Advance(time.Hour + time.Second)

		got, err := h.orchestrator.GetListing(t.Context(), l.ID())
		require.NoError(t, err)
		assert.Equal(t, listing.Expired, got.Status())

		stored, err := h.factory.Create().ListingRepository().Get(t.Context(), l.ID())
		require.NoError(t, err)
		assert.Equal(t, listing.Expired, stored.Status(), "expiry is persisted on read")

		closed, err := h.orchestrator.GetClaim(t.Context(), c.ID())
		require.NoError(t, err)
		assert.Equal(t, claim.Rejected, closed.Status(), "expiry rejects pending claims")

		_, err = h.decide(t, donor, c.ID(), true)
		require.ErrorIs(t, err, errs.ErrListingUnavailable, "expiry preempts the pending claim")

		_, err = h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
		require.ErrorIs(t, err, errs.ErrListingUnavailable)
	})

	t.Run("claimed listing", func(t *testing.T) {
		h := newHarness(t)
		donor := newActor(t, kernel.RoleDonor)
		l := h.createListing(t, donor, time.Hour)
		c, err := h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
		require.NoError(t, err)
		accepted, err := h.decide(t, donor, c.ID(), true)
		require.NoError(t, err)

		h.clock.Advance(2 * time.Hour)

		got, err := h.orchestrator.GetListing(t.Context(), l.ID())
		require.NoError(t, err)
		assert.Equal(t, listing.Expired, got.Status())

		kept, err := h.orchestrator.GetClaim(t.Context(), c.ID())
		require.NoError(t, err)
		assert.Equal(t, claim.Accepted, kept.Status(), "expiry leaves the accepted claim alone")

		_, err = h.advance(t, donor, accepted.Delivery.ID(), "Delivered")
		require.ErrorIs(t, err, errs.ErrInvalidTransition, "expired food cannot be delivered")

		d, err := h.orchestrator.GetDelivery(t.Context(), accepted.Delivery.ID())
		require.NoError(t, err)
		assert.Equal(t, delivery.Scheduled, d.Status(), "the failed update was rolled back")
	})
}

func TestPermissions(t *testing.T) {
	h := newHarness(t)
	donor := newActor(t, kernel.RoleDonor)
	recipient := newActor(t, kernel.RoleRecipient)
	stranger := newActor(t, kernel.RoleRecipient)

	t.Run("recipients cannot post listings", func(t *testing.T) {
		cmd, err := commands.NewCreateListingCommand(kernel.NewUUID(), recipient,
			listing.Details{Title: "Soup", Quantity: 1}, startTime.Add(time.Hour))
		require.NoError(t, err)
		_, err = h.orchestrator.CreateListing(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrNotPermitted)
	})

	l := h.createListing(t, donor, time.Hour)

	t.Run("donors cannot claim", func(t *testing.T) {
		_, err := h.requestClaim(t, donor, l.ID())
		require.ErrorIs(t, err, errs.ErrNotPermitted)
	})

	t.Run("admins cannot claim their own listing", func(t *testing.T) {
		admin := newActor(t, kernel.RoleAdmin)
		own := h.createListing(t, admin, time.Hour)
		_, err := h.requestClaim(t, admin, own.ID())
		require.ErrorIs(t, err, errs.ErrNotPermitted)
	})

	c, err := h.requestClaim(t, recipient, l.ID())
	require.NoError(t, err)

	t.Run("only the donor decides", func(t *testing.T) {
		_, err := h.decide(t, recipient, c.ID(), true)
		require.ErrorIs(t, err, errs.ErrNotPermitted)
	})

	accepted, err := h.decide(t, newActor(t, kernel.RoleAdmin), c.ID(), true)
	require.NoError(t, err, "admins may decide any claim")

	t.Run("strangers cannot update the delivery", func(t *testing.T) {
		_, err := h.advance(t, stranger, accepted.Delivery.ID(), "OutForDelivery")
		require.ErrorIs(t, err, errs.ErrNotPermitted)
	})

	t.Run("only admins award points", func(t *testing.T) {
		cmd, err := commands.NewAwardPointsCommand(kernel.NewUUID(), donor, donor.ID(), 100, "self award", "")
		require.NoError(t, err)
		_, _, err = h.orchestrator.AwardPoints(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrNotPermitted)
	})
}

func TestUpdatePositionRequiresOutForDelivery(t *testing.T) {
	h := newHarness(t)
	donor := newActor(t, kernel.RoleDonor)
	l := h.createListing(t, donor, time.Hour)
	c, err := h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
	require.NoError(t, err)
	accepted, err := h.decide(t, donor, c.ID(), true)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryCommand(donor, accepted.Delivery.ID(),
		commands.DeliveryUpdate{Latitude: ptr(10.0), Longitude: ptr(20.0)})
	require.NoError(t, err)
	_, err = h.orchestrator.UpdateDelivery(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	eta := startTime.Add(time.Hour)
	combined, err := commands.NewUpdateDeliveryCommand(donor, accepted.Delivery.ID(), commands.DeliveryUpdate{
		Status:    "OutForDelivery",
		Latitude:  ptr(10.0),
		Longitude: ptr(20.0),
		ETA:       &eta,
	})
	require.NoError(t, err)
	d, err := h.orchestrator.UpdateDelivery(t.Context(), combined)
	require.NoError(t, err, "status is applied before the position")
	assert.Equal(t, delivery.OutForDelivery, d.Status())
	require.NotNil(t, d.ETA())
	assert.True(t, eta.Equal(*d.ETA()))
}

func TestReviewValidation(t *testing.T) {
	h := newHarness(t)

	_, err := h.review(t, newActor(t, kernel.RoleRecipient), kernel.NewUUID(), kernel.NewUUID(), 6)
	require.ErrorIs(t, err, errs.ErrInvalidRating, "the rating is checked before the claim is looked up")

	_, err = h.review(t, newActor(t, kernel.RoleRecipient), kernel.NewUUID(), kernel.NewUUID(), 3)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReviewOnlyBetweenTheParties(t *testing.T) {
	h := newHarness(t)
	donor := newActor(t, kernel.RoleDonor)
	claimant := newActor(t, kernel.RoleRecipient)

	l := h.createListing(t, donor, time.Hour)
	c, err := h.requestClaim(t, claimant, l.ID())
	require.NoError(t, err)
	accepted, err := h.decide(t, donor, c.ID(), true)
	require.NoError(t, err)
	_, err = h.advance(t, donor, accepted.Delivery.ID(), "Delivered")
	require.NoError(t, err)

	outsider := newActor(t, kernel.RoleNGO)
	_, err = h.review(t, outsider, c.ID(), donor.ID(), 5)
	require.ErrorIs(t, err, errs.ErrNotEligible)

	_, err = h.review(t, claimant, c.ID(), claimant.ID(), 5)
	require.Error(t, err)
}

func TestAwardPointsIsIdempotentPerSourceKey(t *testing.T) {
	h := newHarness(t)
	admin := newActor(t, kernel.RoleAdmin)
	user := kernel.NewUUID()

	award := func(delta int, key string) bool {
		cmd, err := commands.NewAwardPointsCommand(kernel.NewUUID(), admin, user, delta, "community event", key)
		require.NoError(t, err)
		_, created, err := h.orchestrator.AwardPoints(t.Context(), cmd)
		require.NoError(t, err)
		return created
	}

	assert.True(t, award(20, "event-2026-05"))
	assert.False(t, award(20, "event-2026-05"))
	assert.True(t, award(-5, ""))
	assert.True(t, award(-5, ""))

	assert.Equal(t, 10, h.points(t, user))
}

func TestAwardPointsReplayReturnsStoredEntry(t *testing.T) {
	h := newHarness(t)
	admin := newActor(t, kernel.RoleAdmin)
	user := kernel.NewUUID()

	first, err := commands.NewAwardPointsCommand(kernel.NewUUID(), admin, user, 20, "community event", "event-1")
	require.NoError(t, err)
	stored, created, err := h.orchestrator.AwardPoints(t.Context(), first)
	require.NoError(t, err)
	require.True(t, created)

	replay, err := commands.NewAwardPointsCommand(kernel.NewUUID(), admin, user, 999, "different", "event-1")
	require.NoError(t, err)
	got, created, err := h.orchestrator.AwardPoints(t.Context(), replay)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, stored.ID(), got.ID())
	assert.Equal(t, 20, got.Delta())
	assert.Equal(t, "community event", got.Reason())
	assert.Equal(t, "event-1", got.SourceKey())
	assert.Equal(t, 20, h.points(t, user))
}

func TestSettlePendingRewardsRecordsFailures(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()
	donor := newActor(t, kernel.RoleDonor)
	l := h.createListing(t, donor, time.Hour)

	c, err := h.requestClaim(t, newActor(t, kernel.RoleRecipient), l.ID())
	require.NoError(t, err)

	// A reward whose claim never completed cannot be settled.
	orphan, err := reputation.NewPendingReward(kernel.NewUUID(), c.ID(), donor.ID(),
		reputation.PartyDonor, 10, "donated", startTime)
	require.NoError(t, err)
	require.NoError(t, h.factory.Create().PendingRewardRepository().Add(ctx, orphan))

	report, err := h.orchestrator.SettlePendingRewards(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.SettlementReport{Failed: 1}, report)

	stored, err := h.factory.Create().PendingRewardRepository().Get(ctx, orphan.ID())
	require.NoError(t, err)
	assert.False(t, stored.IsSettled())
	assert.Equal(t, 1, stored.Attempts())
	assert.Contains(t, stored.LastError(), "not eligible")
	assert.Zero(t, h.points(t, donor.ID()))
}

func ptr[T any](v T) *T {
	return &v
}
