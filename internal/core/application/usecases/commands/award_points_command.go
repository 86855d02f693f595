package commands

import (
	"errors"
	"strings"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

var ErrAwardPointsCommandIsNotConstructed = errors.New(
	"AwardPointsCommand must be created via NewAwardPointsCommand constructor",
)

// AwardPointsCommand appends a manual point adjustment. A non-empty source key
// makes the award idempotent: replaying the same key changes nothing.
type AwardPointsCommand struct { //nolint:recvcheck //using for validation
	entryID   kernel.UUID
	actor     kernel.Actor
	userID    kernel.UUID
	delta     int
	reason    string
	sourceKey string

	guard guard.ConstructorGuard
}

func NewAwardPointsCommand(
	entryID kernel.UUID,
	actor kernel.Actor,
	userID kernel.UUID,
	delta int,
	reason string,
	sourceKey string,
) (AwardPointsCommand, error) {
	cmd := AwardPointsCommand{
		sourceKey: strings.TrimSpace(sourceKey),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setActor(actor),
		cmd.setUserID(userID),
		cmd.setDelta(delta),
		cmd.setReason(reason),
	); err != nil {
		return AwardPointsCommand{}, err
	}

	return cmd, nil
}

func (c AwardPointsCommand) Validate() error {
	return c.guard.Validate(ErrAwardPointsCommandIsNotConstructed)
}

func (c AwardPointsCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c AwardPointsCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AwardPointsCommand) UserID() kernel.UUID {
	return c.userID
}

func (c AwardPointsCommand) Delta() int {
	return c.delta
}

func (c AwardPointsCommand) Reason() string {
	return c.reason
}

func (c AwardPointsCommand) SourceKey() string {
	return c.sourceKey
}

func (c *AwardPointsCommand) setEntryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.entryID = id
	return nil
}

func (c *AwardPointsCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AwardPointsCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *AwardPointsCommand) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidError("delta")
	}

	c.delta = delta
	return nil
}

func (c *AwardPointsCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
