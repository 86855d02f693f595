package commands

import (
	"errors"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrDecideClaimCommandIsNotConstructed = errors.New(
	"DecideClaimCommand must be created via NewDecideClaimCommand constructor",
)

// DecideClaimCommand accepts or rejects a pending claim. Only the listing's donor
// or an admin may decide; that check needs the listing and happens in the orchestrator.
type DecideClaimCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	claimID kernel.UUID
	accept  bool

	guard guard.ConstructorGuard
}

func NewDecideClaimCommand(actor kernel.Actor, claimID kernel.UUID, accept bool) (DecideClaimCommand, error) {
	cmd := DecideClaimCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setClaimID(claimID),
	); err != nil {
		return DecideClaimCommand{}, err
	}

	return cmd, nil
}

func (c DecideClaimCommand) Validate() error {
	return c.guard.Validate(ErrDecideClaimCommandIsNotConstructed)
}

func (c DecideClaimCommand) Actor() kernel.Actor {
	return c.actor
}

func (c DecideClaimCommand) ClaimID() kernel.UUID {
	return c.claimID
}

func (c DecideClaimCommand) Accept() bool {
	return c.accept
}

func (c *DecideClaimCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DecideClaimCommand) setClaimID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.claimID = id
	return nil
}
