package commands

import (
	"errors"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrRequestClaimCommandIsNotConstructed = errors.New(
	"RequestClaimCommand must be created via NewRequestClaimCommand constructor",
)

// RequestClaimCommand asks for a listing on behalf of a recipient or NGO.
type RequestClaimCommand struct { //nolint:recvcheck //using for validation
	claimID   kernel.UUID
	actor     kernel.Actor
	listingID kernel.UUID
	notes     string
	pickupAt  *time.Time

	guard guard.ConstructorGuard
}

func NewRequestClaimCommand(
	claimID kernel.UUID,
	actor kernel.Actor,
	listingID kernel.UUID,
	notes string,
	pickupAt *time.Time,
) (RequestClaimCommand, error) {
	cmd := RequestClaimCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}
	if pickupAt != nil {
		t := pickupAt.UTC()
		cmd.pickupAt = &t
	}

	if err := errors.Join(
		cmd.setClaimID(claimID),
		cmd.setActor(actor),
		cmd.setListingID(listingID),
	); err != nil {
		return RequestClaimCommand{}, err
	}

	return cmd, nil
}

func (c RequestClaimCommand) Validate() error {
	return c.guard.Validate(ErrRequestClaimCommandIsNotConstructed)
}

func (c RequestClaimCommand) ClaimID() kernel.UUID {
	return c.claimID
}

func (c RequestClaimCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RequestClaimCommand) ListingID() kernel.UUID {
	return c.listingID
}

func (c RequestClaimCommand) Notes() string {
	return c.notes
}

// PickupAt is the requested pickup time, nil when the claimant did not propose one.
func (c RequestClaimCommand) PickupAt() *time.Time {
	return c.pickupAt
}

func (c *RequestClaimCommand) setClaimID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.claimID = id
	return nil
}

func (c *RequestClaimCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RequestClaimCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.listingID = id
	return nil
}
