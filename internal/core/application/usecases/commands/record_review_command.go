package commands

import (
	"errors"
	"strings"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrRecordReviewCommandIsNotConstructed = errors.New(
	"RecordReviewCommand must be created via NewRecordReviewCommand constructor",
)

// RecordReviewCommand rates the other party of a completed claim. The acting user
// is the reviewer. The rating range is checked by the reputation ledger, before
// any eligibility lookup.
type RecordReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	actor      kernel.Actor
	claimID    kernel.UUID
	revieweeID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

func NewRecordReviewCommand(
	reviewID kernel.UUID,
	actor kernel.Actor,
	claimID kernel.UUID,
	revieweeID kernel.UUID,
	rating int,
	comment string,
) (RecordReviewCommand, error) {
	cmd := RecordReviewCommand{
		rating:  rating,
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setActor(actor),
		cmd.setClaimID(claimID),
		cmd.setRevieweeID(revieweeID),
	); err != nil {
		return RecordReviewCommand{}, err
	}

	return cmd, nil
}

func (c RecordReviewCommand) Validate() error {
	return c.guard.Validate(ErrRecordReviewCommandIsNotConstructed)
}

func (c RecordReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c RecordReviewCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RecordReviewCommand) ClaimID() kernel.UUID {
	return c.claimID
}

func (c RecordReviewCommand) RevieweeID() kernel.UUID {
	return c.revieweeID
}

func (c RecordReviewCommand) Rating() int {
	return c.rating
}

func (c RecordReviewCommand) Comment() string {
	return c.comment
}

func (c *RecordReviewCommand) setReviewID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.reviewID = id
	return nil
}

func (c *RecordReviewCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RecordReviewCommand) setClaimID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.claimID = id
	return nil
}

func (c *RecordReviewCommand) setRevieweeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.revieweeID = id
	return nil
}
