package commands

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
		"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
	)
	errNothingToUpdate     = errors.New("either status or position must be given")
	errIncompletePosition  = errors.New("latitude and longitude must be given together")
	errETARequiresPosition = errors.New("eta is only accepted with a position")
)

// DeliveryUpdate is the raw request to change a delivery. Status is the target
// state name; an empty Status only moves the position.
type DeliveryUpdate struct {
	Status    string
	Agent     string
	Latitude  *float64
	Longitude *float64
	ETA       *time.Time
}

// UpdateDeliveryCommand advances a delivery and/or reports its live position.
// When both are present the status change is applied first, so a single request
// can move a delivery out for delivery and report where it is.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	deliveryID kernel.UUID
	status     delivery.Status
	agent      string
	position   *kernel.Position
	eta        *time.Time

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(
	actor kernel.Actor,
	deliveryID kernel.UUID,
	update DeliveryUpdate,
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		agent: strings.TrimSpace(update.Agent),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(update.Status),
		cmd.setPosition(update.Latitude, update.Longitude, update.ETA),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	if !cmd.HasStatus() && !cmd.HasPosition() {
		return UpdateDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("status", errNothingToUpdate)
	}

	return cmd, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryCommand) HasStatus() bool {
	return c.status != delivery.Unknown
}

func (c UpdateDeliveryCommand) Status() delivery.Status {
	return c.status
}

func (c UpdateDeliveryCommand) Agent() string {
	return c.agent
}

func (c UpdateDeliveryCommand) HasPosition() bool {
	return c.position != nil
}

func (c UpdateDeliveryCommand) Position() *kernel.Position {
	return c.position
}

func (c UpdateDeliveryCommand) ETA() *time.Time {
	return c.eta
}

func (c *UpdateDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryCommand) setStatus(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	for _, status := range []delivery.Status{delivery.Scheduled, delivery.OutForDelivery, delivery.Delivered} {
		if normalizeStatusName(status.String()) == normalizeStatusName(raw) {
			c.status = status
			return nil
		}
	}

	_, err := delivery.StatusFromString(raw)
	return err
}

// normalizeStatusName lets clients send "Out for Delivery" or "out_for_delivery"
// for OutForDelivery.
func normalizeStatusName(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name))
}

func (c *UpdateDeliveryCommand) setPosition(latitude, longitude *float64, eta *time.Time) error {
	if latitude == nil && longitude == nil {
		if eta != nil {
			return errs.NewValueIsInvalidErrorWithCause("eta", errETARequiresPosition)
		}
		return nil
	}
	if latitude == nil || longitude == nil {
		return errs.NewValueIsInvalidErrorWithCause("position", errIncompletePosition)
	}

	position, err := kernel.NewPosition(*latitude, *longitude)
	if err != nil {
		return err
	}

	c.position = &position
	if eta != nil {
		t := eta.UTC()
		c.eta = &t
	}
	return nil
}
