package services

import (
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/pkg/errs"
)

// ReviewEligibility decides whether a review may be recorded for a claim.
type ReviewEligibility struct{}

func NewReviewEligibility() ReviewEligibility {
	return ReviewEligibility{}
}

// Check returns NotEligible unless d is Delivered and reviewer and reviewee are the
// claimant and the donor of l, in either order. d may be nil when no delivery exists.
func (ReviewEligibility) Check(
	l *listing.Listing,
	c *claim.Claim,
	d *delivery.Delivery,
	reviewerID, revieweeID kernel.UUID,
) error {
	subject := "claim " + c.ID().String()

	if d == nil || !d.IsDelivered() {
		return errs.NewNotEligibleError(subject, "delivery is not delivered")
	}
	if c.Status() != claim.Completed && c.Status() != claim.Accepted {
		return errs.NewNotEligibleError(subject, "claim is "+c.Status().String())
	}

	donorToClaimant := l.IsOwnedBy(reviewerID) && c.IsClaimant(revieweeID)
	claimantToDonor := c.IsClaimant(reviewerID) && l.IsOwnedBy(revieweeID)
	if !donorToClaimant && !claimantToDonor {
		return errs.NewNotEligibleError(subject, "reviewer and reviewee must be the two parties of the claim")
	}
	return nil
}
