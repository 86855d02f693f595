package delivery

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created via NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

var errPositionRequiresOutForDelivery = errors.New("position can only be reported while OutForDelivery")

// Delivery tracks the handover of a claimed listing to its claimant.
//
// Delivery follows these invariants:
//   - it references the accepted claim and its listing
//   - status only moves forward and Delivered is final
//   - position and ETA change only while OutForDelivery
type Delivery struct {
	id        kernel.UUID
	claimID   kernel.UUID
	listingID kernel.UUID
	status    Status

	// agent names whoever carries the food; empty for self pickup
	agent string

	position *kernel.Position
	eta      *time.Time

	createdAt   time.Time
	updatedAt   time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewDelivery starts a Scheduled delivery for an accepted claim.
func NewDelivery(id, claimID, listingID kernel.UUID, now time.Time) (*Delivery, error) {
	d := &Delivery{
		status:        Scheduled,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setClaim(claimID),
		d.setListing(listingID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Snapshot is the persisted form of a delivery used by RestoreDelivery.
type Snapshot struct {
	ID          kernel.UUID
	ClaimID     kernel.UUID
	ListingID   kernel.UUID
	Status      Status
	Agent       string
	Position    *kernel.Position
	ETA         *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time
}

// RestoreDelivery rebuilds a delivery from persisted state.
func RestoreDelivery(s Snapshot) (*Delivery, error) {
	d := &Delivery{
		agent:         s.Agent,
		position:      s.Position,
		eta:           s.ETA,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		deliveredAt:   s.DeliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setClaim(s.ClaimID),
		d.setListing(s.ListingID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = s.Status

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) ClaimID() kernel.UUID {
	return d.claimID
}

func (d *Delivery) ListingID() kernel.UUID {
	return d.listingID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Agent() string {
	return d.agent
}

// Position returns the last reported position, or nil if none was reported.
func (d *Delivery) Position() *kernel.Position {
	return d.position
}

func (d *Delivery) ETA() *time.Time {
	return d.eta
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsDelivered reports whether the food reached the claimant.
func (d *Delivery) IsDelivered() bool {
	return d.status == Delivered
}

// Advance moves the delivery forward to the given status. A non-empty agent
// replaces the recorded one.
func (d *Delivery) Advance(to Status, agent string, now time.Time) error {
	newStatus, err := d.status.AdvanceTo(to)
	if err != nil {
		return err
	}

	d.status = newStatus
	if agent = strings.TrimSpace(agent); agent != "" {
		d.agent = agent
	}
	if newStatus == Delivered {
		d.deliveredAt = &now
	}
	d.updatedAt = now
	return nil
}

// UpdatePosition records a live position and optional ETA. Only allowed while OutForDelivery.
func (d *Delivery) UpdatePosition(position kernel.Position, eta *time.Time, now time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if d.status != OutForDelivery {
		return errs.NewInvalidTransitionErrorWithCause(
			"delivery", d.status.String(), d.status.String(), errPositionRequiresOutForDelivery)
	}

	d.position = &position
	if eta != nil {
		d.eta = eta
	}
	d.updatedAt = now
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setClaim(claimID kernel.UUID) error {
	if claimID.IsZero() {
		return errs.NewValueIsRequiredError("claim")
	}
	d.claimID = claimID
	return nil
}

func (d *Delivery) setListing(listingID kernel.UUID) error {
	if listingID.IsZero() {
		return errs.NewValueIsRequiredError("listing")
	}
	d.listingID = listingID
	return nil
}
