package reputation

import (
	"fmt"

	"foodshare/internal/core/domain/model/kernel"
)

// Party distinguishes the two sides of a completed claim.
type Party string

const (
	PartyDonor    Party = "donor"
	PartyClaimant Party = "claimant"
)

// CompletionSourceKey is the idempotency key of the reward a party earns when a claim completes.
func CompletionSourceKey(claimID kernel.UUID, party Party) string {
	return fmt.Sprintf("claim:%s:%s", claimID, party)
}

// ReviewSourceKey is the idempotency key of the award attached to a review.
func ReviewSourceKey(reviewID kernel.UUID) string {
	return fmt.Sprintf("review:%s", reviewID)
}
