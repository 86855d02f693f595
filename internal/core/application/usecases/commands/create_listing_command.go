package commands

import (
	"errors"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand posts surplus food on behalf of a donor.
//
// Example:
//
//	cmd, err := commands.NewCreateListingCommand(kernel.NewUUID(), donor, listing.Details{
//	    Title:    "Bread",
//	    Quantity: 5,
//	}, time.Now().Add(6*time.Hour))
//	if err != nil {
//	    return err
//	}
//	l, err := orchestrator.CreateListing(ctx, cmd)
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	actor     kernel.Actor
	details   listing.Details
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateListingCommand checks the identifiers and that an expiry was given.
// Field rules such as title and quantity are enforced by the listing itself.
func NewCreateListingCommand(
	listingID kernel.UUID,
	actor kernel.Actor,
	details listing.Details,
	expiresAt time.Time,
) (CreateListingCommand, error) {
	cmd := CreateListingCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setActor(actor),
		cmd.setExpiresAt(expiresAt),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return cmd, nil
}

func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

func (c CreateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

func (c CreateListingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateListingCommand) Details() listing.Details {
	return c.details
}

func (c CreateListingCommand) ExpiresAt() time.Time {
	return c.expiresAt
}

func (c *CreateListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.listingID = id
	return nil
}

func (c *CreateListingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateListingCommand) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expires_at")
	}

	c.expiresAt = expiresAt.UTC()
	return nil
}
