package lifecycle

import (
	"context"
	"errors"
	"time"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/ports"
	"foodshare/internal/pkg/errs"
)

var errDeliveryNeedsAcceptedClaim = errors.New("a delivery is started only for an accepted claim")

// DeliveryTracker owns delivery status and position.
type DeliveryTracker struct {
	clock kernel.Clock
}

func NewDeliveryTracker(clock kernel.Clock) *DeliveryTracker {
	return &DeliveryTracker{clock: clock}
}

// Start schedules the delivery of an accepted claim.
func (t *DeliveryTracker) Start(ctx context.Context, repos ports.Repositories, c *claim.Claim) (*delivery.Delivery, error) {
	if c.Status() != claim.Accepted {
		return nil, errs.NewInvalidTransitionErrorWithCause("delivery", "none", delivery.Scheduled.String(),
			errDeliveryNeedsAcceptedClaim)
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), c.ID(), c.ListingID(), t.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := repos.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Authorize allows the donor, the claimant and admins to update a delivery.
func (t *DeliveryTracker) Authorize(l *listing.Listing, c *claim.Claim, actor kernel.Actor) error {
	if actor.IsAdmin() || l.IsOwnedBy(actor.ID()) || c.IsClaimant(actor.ID()) {
		return nil
	}
	return errs.NewNotPermittedError(actor.ID().String(), "update delivery of claim "+c.ID().String())
}

// Advance moves d forward to the given status. It reports whether d has just been
// delivered, in which case the caller completes the claim in the same transaction.
func (t *DeliveryTracker) Advance(
	ctx context.Context,
	repos ports.Repositories,
	d *delivery.Delivery,
	to delivery.Status,
	agent string,
) (bool, error) {
	if err := d.Advance(to, agent, t.clock.Now()); err != nil {
		return false, err
	}

	if err := repos.DeliveryRepository().Update(ctx, d); err != nil {
		return false, err
	}
	return d.IsDelivered(), nil
}

// UpdatePosition records the live position of a delivery that is out for delivery.
func (t *DeliveryTracker) UpdatePosition(
	ctx context.Context,
	repos ports.Repositories,
	d *delivery.Delivery,
	position kernel.Position,
	eta *time.Time,
) error {
	if err := d.UpdatePosition(position, eta, t.clock.Now()); err != nil {
		return err
	}
	return repos.DeliveryRepository().Update(ctx, d)
}
