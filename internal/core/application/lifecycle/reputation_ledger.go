package lifecycle

import (
	"context"
	"errors"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/core/ports"
	"foodshare/internal/pkg/errs"
)

// ReputationLedger appends point awards and reviews. Totals are never stored;
// they are the sum of a user's entries.
type ReputationLedger struct {
	listings    *ListingStore
	policy      services.RewardPolicy
	eligibility services.ReviewEligibility
	clock       kernel.Clock
}

func NewReputationLedger(listings *ListingStore, policy services.RewardPolicy, clock kernel.Clock) *ReputationLedger {
	return &ReputationLedger{
		listings:    listings,
		policy:      policy,
		eligibility: services.NewReviewEligibility(),
		clock:       clock,
	}
}

// AwardPoints appends an entry. When sourceKey was already used nothing is
// written, and the stored entry is returned with false.
func (rl *ReputationLedger) AwardPoints(
	ctx context.Context,
	repos ports.Repositories,
	entryID, userID kernel.UUID,
	delta int,
	reason, sourceKey string,
) (*reputation.Entry, bool, error) {
	entry, err := reputation.NewEntry(entryID, userID, delta, reason, sourceKey, rl.clock.Now())
	if err != nil {
		return nil, false, err
	}

	created, err := repos.ReputationEntryRepository().Append(ctx, entry)
	if err != nil {
		return nil, false, err
	}
	if created {
		return entry, true, nil
	}

	stored, err := repos.ReputationEntryRepository().GetBySourceKey(ctx, entry.SourceKey())
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}

// RecordReview stores a review of one party of a delivered claim by the other and
// credits the reviewee with points for the rating.
func (rl *ReputationLedger) RecordReview(
	ctx context.Context,
	repos ports.Repositories,
	reviewID, claimID, reviewerID, revieweeID kernel.UUID,
	rating int,
	comment string,
) (*reputation.Review, error) {
	validRating, err := reputation.NewRating(rating)
	if err != nil {
		return nil, err
	}

	c, err := repos.ClaimRepository().Get(ctx, claimID)
	if err != nil {
		return nil, err
	}

	l, err := rl.listings.Get(ctx, repos, c.ListingID())
	if err != nil {
		return nil, err
	}

	d, err := rl.deliveryOf(ctx, repos, c.ID())
	if err != nil {
		return nil, err
	}

	if err := rl.eligibility.Check(l, c, d, reviewerID, revieweeID); err != nil {
		return nil, err
	}

	exists, err := repos.ReviewRepository().Exists(ctx, c.ID(), reviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewDuplicateReviewError(c.ID().String(), reviewerID.String())
	}

	now := rl.clock.Now()
	review, err := reputation.NewReview(reviewID, c.ID(), reviewerID, revieweeID, validRating.Int(), comment, now)
	if err != nil {
		return nil, err
	}
	if err := repos.ReviewRepository().Add(ctx, review); err != nil {
		return nil, err
	}

	if points := rl.policy.ReviewPoints(validRating); points > 0 {
		entry, err := reputation.NewEntry(kernel.NewUUID(), revieweeID, points,
			"review of claim "+c.ID().String(), reputation.ReviewSourceKey(review.ID()), now)
		if err != nil {
			return nil, err
		}
		if _, err := repos.ReputationEntryRepository().Append(ctx, entry); err != nil {
			return nil, err
		}
	}

	return review, nil
}

// ScheduleCompletionRewards writes the donor and claimant rewards of a completed
// claim to the outbox. Replays are ignored by source key.
func (rl *ReputationLedger) ScheduleCompletionRewards(
	ctx context.Context,
	repos ports.Repositories,
	l *listing.Listing,
	c *claim.Claim,
) ([]*reputation.PendingReward, error) {
	rewards, err := rl.policy.CompletionRewards(l, c, rl.clock.Now())
	if err != nil {
		return nil, err
	}

	for _, reward := range rewards {
		if err := repos.PendingRewardRepository().Add(ctx, reward); err != nil {
			return nil, err
		}
	}
	return rewards, nil
}

// Settle turns a pending reward into a ledger entry. The claim must be Completed.
// Settling twice appends nothing the second time.
func (rl *ReputationLedger) Settle(
	ctx context.Context,
	repos ports.Repositories,
	rewardID kernel.UUID,
) (*reputation.PendingReward, error) {
	reward, err := repos.PendingRewardRepository().Get(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward.IsSettled() {
		return reward, nil
	}

	c, err := repos.ClaimRepository().Get(ctx, reward.ClaimID())
	if err != nil {
		return nil, err
	}
	if c.Status() != claim.Completed {
		return nil, errs.NewNotEligibleError("claim "+c.ID().String(), "claim is "+c.Status().String())
	}

	now := rl.clock.Now()
	entry, err := reward.ToEntry(kernel.NewUUID(), now)
	if err != nil {
		return nil, err
	}
	if _, err := repos.ReputationEntryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	reward.MarkSettled(now)
	if err := repos.PendingRewardRepository().Update(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// RecordSettlementFailure keeps the reason a settlement attempt failed.
func (rl *ReputationLedger) RecordSettlementFailure(
	ctx context.Context,
	repos ports.Repositories,
	rewardID kernel.UUID,
	cause error,
) error {
	reward, err := repos.PendingRewardRepository().Get(ctx, rewardID)
	if err != nil {
		return err
	}
	if reward.IsSettled() {
		return nil
	}

	reward.RecordFailure(cause)
	return repos.PendingRewardRepository().Update(ctx, reward)
}

func (rl *ReputationLedger) TotalPoints(ctx context.Context, repos ports.Repositories, userID kernel.UUID) (int, error) {
	return repos.ReputationEntryRepository().TotalPoints(ctx, userID)
}

func (rl *ReputationLedger) deliveryOf(
	ctx context.Context,
	repos ports.Repositories,
	claimID kernel.UUID,
) (*delivery.Delivery, error) {
	d, err := repos.DeliveryRepository().GetByClaim(ctx, claimID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return d, err
}
