package lifecycle

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/core/ports"
	"foodshare/internal/pkg/errs"
)

// ClaimDecision is the state after a claim was decided.
type ClaimDecision struct {
	Claim   *claim.Claim
	Listing *listing.Listing

	// Rejected are the sibling claims rejected by an acceptance.
	Rejected []*claim.Claim

	// AlreadyAccepted reports an idempotent re-accept that changed nothing.
	AlreadyAccepted bool
}

// Accepted reports whether the decided claim ended up Accepted.
func (d ClaimDecision) Accepted() bool {
	return d.Claim != nil && d.Claim.Status() == claim.Accepted
}

// ClaimCoordinator arbitrates claims and owns the claim and listing status
// transitions. Every method must run inside the listing's critical section.
type ClaimCoordinator struct {
	listings *ListingStore
	arbiter  services.ClaimArbiter
	clock    kernel.Clock
}

func NewClaimCoordinator(listings *ListingStore, clock kernel.Clock) *ClaimCoordinator {
	return &ClaimCoordinator{
		listings: listings,
		arbiter:  services.NewClaimArbiter(),
		clock:    clock,
	}
}

// RequestClaim opens a Pending claim on an Available listing without an active claim.
func (cc *ClaimCoordinator) RequestClaim(
	ctx context.Context,
	repos ports.Repositories,
	claimID, listingID, claimantID kernel.UUID,
	notes string,
	pickupAt *time.Time,
) (*claim.Claim, error) {
	l, err := cc.listings.Lock(ctx, repos, listingID)
	if err != nil {
		return nil, err
	}

	existing, err := repos.ClaimRepository().FindByListing(ctx, l.ID())
	if err != nil {
		return nil, err
	}

	if err := cc.arbiter.EnsureClaimable(l, claimantID, existing); err != nil {
		return nil, err
	}

	c, err := claim.NewClaim(claimID, l.ID(), claimantID, notes, pickupAt, cc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := repos.ClaimRepository().Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Decide accepts or rejects a claim on behalf of decider, who must be the
// listing's donor or an admin.
func (cc *ClaimCoordinator) Decide(
	ctx context.Context,
	repos ports.Repositories,
	claimID kernel.UUID,
	decider kernel.Actor,
	accept bool,
) (ClaimDecision, error) {
	c, err := repos.ClaimRepository().Get(ctx, claimID)
	if err != nil {
		return ClaimDecision{}, err
	}

	l, err := cc.listings.Lock(ctx, repos, c.ListingID())
	if err != nil {
		return ClaimDecision{}, err
	}

	if !l.IsOwnedBy(decider.ID()) && !decider.IsAdmin() {
		return ClaimDecision{}, errs.NewNotPermittedError(decider.ID().String(), "decide claims on listing "+l.ID().String())
	}

	now := cc.clock.Now()

	if !accept {
		if err := cc.arbiter.Reject(c, now); err != nil {
			return ClaimDecision{}, err
		}
		if err := repos.ClaimRepository().Update(ctx, c); err != nil {
			return ClaimDecision{}, err
		}
		return ClaimDecision{Claim: c, Listing: l}, nil
	}

	siblings, err := repos.ClaimRepository().FindByListing(ctx, l.ID())
	if err != nil {
		return ClaimDecision{}, err
	}

	decision, err := cc.arbiter.Accept(l, c, siblings, now)
	if err != nil {
		return ClaimDecision{}, err
	}
	if decision.AlreadyAccepted {
		return ClaimDecision{Claim: c, Listing: l, AlreadyAccepted: true}, nil
	}

	if err := cc.listings.Save(ctx, repos, l); err != nil {
		return ClaimDecision{}, err
	}
	if err := repos.ClaimRepository().Update(ctx, c); err != nil {
		return ClaimDecision{}, err
	}
	for _, rejected := range decision.Rejected {
		if err := repos.ClaimRepository().Update(ctx, rejected); err != nil {
			return ClaimDecision{}, err
		}
	}

	return ClaimDecision{Claim: c, Listing: l, Rejected: decision.Rejected}, nil
}

// Complete marks the listing Delivered and the claim Completed. l must have been
// obtained through ListingStore.Lock in the same transaction.
func (cc *ClaimCoordinator) Complete(
	ctx context.Context,
	repos ports.Repositories,
	l *listing.Listing,
	c *claim.Claim,
) error {
	if err := cc.arbiter.Complete(l, c, cc.clock.Now()); err != nil {
		return err
	}

	if err := cc.listings.Save(ctx, repos, l); err != nil {
		return err
	}
	return repos.ClaimRepository().Update(ctx, c)
}
