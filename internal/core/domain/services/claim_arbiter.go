package services

import (
	"errors"
	"fmt"
	"time"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/pkg/errs"
)

// Decision is the outcome of accepting a claim.
type Decision struct {
	// AlreadyAccepted is set when the claim had been accepted earlier and nothing changed.
	AlreadyAccepted bool

	// Rejected holds the sibling claims that were auto-rejected.
	Rejected []*claim.Claim
}

// ClaimArbiter enforces the single-active-claim rule of a listing.
//
// Business rules:
//   - A donor cannot claim their own listing
//   - A listing accepts new claims only while Available and without an active claim
//   - Accepting a claim marks the listing Claimed and rejects every other Pending claim
//   - Re-accepting the claim a listing is already Claimed by is a no-op
//   - Pending claims of an expired listing are rejected
//
// The caller must hold the listing's critical section for the whole decision.
type ClaimArbiter struct{}

func NewClaimArbiter() ClaimArbiter {
	return ClaimArbiter{}
}

// EnsureClaimable checks that claimantID may open a new claim on l.
// activeClaims are the Pending or Accepted claims currently stored for l.
func (ClaimArbiter) EnsureClaimable(l *listing.Listing, claimantID kernel.UUID, activeClaims []*claim.Claim) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.IsOwnedBy(claimantID) {
		return errs.NewNotPermittedError(claimantID.String(), "claim their own listing")
	}
	if l.Status() != listing.Available {
		return errs.NewListingUnavailableError(l.ID().String(), "listing is "+l.Status().String())
	}
	for _, c := range activeClaims {
		if c.Status().IsActive() {
			return errs.NewListingUnavailableError(l.ID().String(), "listing already has an active claim")
		}
	}
	return nil
}

// Accept decides c in favor of its claimant.
//
// Checks run in this order:
//  1. c is Accepted and l is Claimed by it: idempotent success
//  2. l is not Available: ListingUnavailable
//  3. c is not Pending: InvalidTransition
//
// On success c is Accepted, l is Claimed by c and every Pending sibling is Rejected.
func (a ClaimArbiter) Accept(l *listing.Listing, c *claim.Claim, siblings []*claim.Claim, now time.Time) (Decision, error) {
	if err := a.validatePair(l, c); err != nil {
		return Decision{}, err
	}

	if c.Status() == claim.Accepted && l.IsClaimedBy(c.ID()) {
		return Decision{AlreadyAccepted: true}, nil
	}

	if l.Status() != listing.Available {
		return Decision{}, errs.NewListingUnavailableError(l.ID().String(), "listing is "+l.Status().String())
	}

	if err := c.Accept(now); err != nil {
		return Decision{}, err
	}

	if err := l.MarkClaimed(c.ID(), now); err != nil {
		return Decision{}, err
	}

	var rejected []*claim.Claim
	for _, sibling := range siblings {
		if sibling.IsEqual(c) || sibling.Status() != claim.Pending {
			continue
		}
		if err := sibling.Reject(now); err != nil {
			return Decision{}, err
		}
		rejected = append(rejected, sibling)
	}

	return Decision{Rejected: rejected}, nil
}

// Reject declines a Pending claim. The listing is left untouched.
func (ClaimArbiter) Reject(c *claim.Claim, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.Reject(now)
}

// CloseExpired rejects the Pending claims of an Expired listing and returns them.
// Accepted and decided claims are left as they are.
func (ClaimArbiter) CloseExpired(l *listing.Listing, claims []*claim.Claim, now time.Time) ([]*claim.Claim, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.Status() != listing.Expired {
		return nil, errs.NewInvalidTransitionErrorWithCause("listing", l.Status().String(), listing.Expired.String(),
			errors.New("only expired listings close their claims"))
	}

	var rejected []*claim.Claim
	for _, c := range claims {
		if !c.ListingID().IsEqual(l.ID()) || c.Status() != claim.Pending {
			continue
		}
		if err := c.Reject(now); err != nil {
			return nil, err
		}
		rejected = append(rejected, c)
	}
	return rejected, nil
}

// Complete closes the transaction once the delivery has arrived: the listing
// becomes Delivered and the claim Completed. An expired listing cannot be delivered.
func (a ClaimArbiter) Complete(l *listing.Listing, c *claim.Claim, now time.Time) error {
	if err := a.validatePair(l, c); err != nil {
		return err
	}
	if !l.IsClaimedBy(c.ID()) {
		return errs.NewInvalidTransitionErrorWithCause("listing", l.Status().String(), listing.Delivered.String(),
			fmt.Errorf("listing is not claimed by claim %s", c.ID()))
	}
	if err := l.MarkDelivered(now); err != nil {
		return err
	}
	return c.Complete(now)
}

func (ClaimArbiter) validatePair(l *listing.Listing, c *claim.Claim) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.ListingID().IsEqual(l.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("claim",
			fmt.Errorf("claim %s belongs to listing %s, not %s", c.ID(), c.ListingID(), l.ID()))
	}
	return nil
}
