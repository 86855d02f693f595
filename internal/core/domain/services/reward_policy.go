package services

import (
	"errors"
	"fmt"
	"time"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/pkg/errs"
)

const (
	DefaultDonorPoints         = 10
	DefaultClaimantPoints      = 5
	DefaultReviewPointsPerStar = 1
)

// RewardPolicy holds the point values of the ledger.
type RewardPolicy struct {
	DonorPoints         int
	ClaimantPoints      int
	ReviewPointsPerStar int
}

func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{
		DonorPoints:         DefaultDonorPoints,
		ClaimantPoints:      DefaultClaimantPoints,
		ReviewPointsPerStar: DefaultReviewPointsPerStar,
	}
}

// Validate rejects negative point values. Zero disables an award.
func (p RewardPolicy) Validate() error {
	var donorErr, claimantErr, reviewErr error
	if p.DonorPoints < 0 {
		donorErr = errs.NewValueIsInvalidErrorWithCause("donor points", fmt.Errorf("%d is negative", p.DonorPoints))
	}
	if p.ClaimantPoints < 0 {
		claimantErr = errs.NewValueIsInvalidErrorWithCause("claimant points", fmt.Errorf("%d is negative", p.ClaimantPoints))
	}
	if p.ReviewPointsPerStar < 0 {
		reviewErr = errs.NewValueIsInvalidErrorWithCause("review points per star", fmt.Errorf("%d is negative", p.ReviewPointsPerStar))
	}
	return errors.Join(donorErr, claimantErr, reviewErr)
}

// CompletionRewards returns the pending rewards of the donor and the claimant of a
// completed claim. Parties with a zero award are skipped.
func (p RewardPolicy) CompletionRewards(l *listing.Listing, c *claim.Claim, now time.Time) ([]*reputation.PendingReward, error) {
	if c.Status() != claim.Completed {
		return nil, errs.NewNotEligibleError("claim "+c.ID().String(), "claim is "+c.Status().String())
	}

	awards := []struct {
		party  reputation.Party
		userID kernel.UUID
		points int
		reason string
	}{
		{reputation.PartyDonor, l.DonorID(), p.DonorPoints, fmt.Sprintf("donated %q", l.Title())},
		{reputation.PartyClaimant, c.ClaimantID(), p.ClaimantPoints, fmt.Sprintf("received %q", l.Title())},
	}

	rewards := make([]*reputation.PendingReward, 0, len(awards))
	for _, award := range awards {
		if award.points == 0 {
			continue
		}
		reward, err := reputation.NewPendingReward(kernel.NewUUID(), c.ID(), award.userID, award.party, award.points, award.reason, now)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

// ReviewPoints is the award a reviewee earns for a review.
func (p RewardPolicy) ReviewPoints(rating reputation.Rating) int {
	return rating.Int() * p.ReviewPointsPerStar
}
