package claim

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// MaxNotesLength bounds the free-text note a claimant attaches to a request.
const MaxNotesLength = 1000

// ErrClaimIsNotConstructed is returned when a Claim was not created via NewClaim or RestoreClaim.
var ErrClaimIsNotConstructed = errors.New("Claim must be created via NewClaim constructor")

// Claim is a request by claimantID to receive listingID.
type Claim struct {
	id         kernel.UUID
	listingID  kernel.UUID
	claimantID kernel.UUID
	status     Status
	notes      string

	// pickupAt is the time the claimant proposes to collect the food, if any
	pickupAt *time.Time

	requestedAt time.Time
	decidedAt   *time.Time
	completedAt *time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewClaim creates a Pending claim requested at now.
func NewClaim(id, listingID, claimantID kernel.UUID, notes string, pickupAt *time.Time, now time.Time) (*Claim, error) {
	c := &Claim{
		status:        Pending,
		requestedAt:   now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setListing(listingID),
		c.setClaimant(claimantID),
		c.setNotes(notes),
		c.setPickupAt(pickupAt, now),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Snapshot is the persisted form of a claim used by RestoreClaim.
type Snapshot struct {
	ID          kernel.UUID
	ListingID   kernel.UUID
	ClaimantID  kernel.UUID
	Status      Status
	Notes       string
	PickupAt    *time.Time
	RequestedAt time.Time
	DecidedAt   *time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// RestoreClaim rebuilds a claim from persisted state. The pickup time is not
// compared with the current time.
func RestoreClaim(s Snapshot) (*Claim, error) {
	c := &Claim{
		notes:         s.Notes,
		pickupAt:      s.PickupAt,
		requestedAt:   s.RequestedAt,
		decidedAt:     s.DecidedAt,
		completedAt:   s.CompletedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(s.ID),
		c.setListing(s.ListingID),
		c.setClaimant(s.ClaimantID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	c.status = s.Status

	return c, nil
}

// Validate ensures the claim was built by a constructor.
func (c *Claim) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClaimIsNotConstructed
	}
	return nil
}

func (c *Claim) ID() kernel.UUID {
	return c.id
}

func (c *Claim) ListingID() kernel.UUID {
	return c.listingID
}

func (c *Claim) ClaimantID() kernel.UUID {
	return c.claimantID
}

func (c *Claim) Status() Status {
	return c.status
}

func (c *Claim) Notes() string {
	return c.notes
}

func (c *Claim) PickupAt() *time.Time {
	return c.pickupAt
}

func (c *Claim) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *Claim) DecidedAt() *time.Time {
	return c.decidedAt
}

func (c *Claim) CompletedAt() *time.Time {
	return c.completedAt
}

func (c *Claim) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsClaimant reports whether userID requested this claim.
func (c *Claim) IsClaimant(userID kernel.UUID) bool {
	return c.claimantID.IsEqual(userID)
}

// IsEqual compares claims by identity.
func (c *Claim) IsEqual(other *Claim) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Accept marks a Pending claim as Accepted.
func (c *Claim) Accept(now time.Time) error {
	newStatus, err := c.status.Accept()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.decidedAt = &now
	c.updatedAt = now
	return nil
}

// Reject marks a Pending claim as Rejected.
func (c *Claim) Reject(now time.Time) error {
	newStatus, err := c.status.Reject()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.decidedAt = &now
	c.updatedAt = now
	return nil
}

// Complete marks an Accepted claim as Completed once its delivery is done.
func (c *Claim) Complete(now time.Time) error {
	newStatus, err := c.status.Complete()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.completedAt = &now
	c.updatedAt = now
	return nil
}

func (c *Claim) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Claim) setListing(listingID kernel.UUID) error {
	if listingID.IsZero() {
		return errs.NewValueIsRequiredError("listing")
	}
	c.listingID = listingID
	return nil
}

func (c *Claim) setClaimant(claimantID kernel.UUID) error {
	if claimantID.IsZero() {
		return errs.NewValueIsRequiredError("claimant")
	}
	c.claimantID = claimantID
	return nil
}

func (c *Claim) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, MaxNotesLength)
	}
	c.notes = notes
	return nil
}

func (c *Claim) setPickupAt(pickupAt *time.Time, now time.Time) error {
	if pickupAt != nil && pickupAt.Before(now) {
		return errs.NewValueIsInvalidErrorWithCause("pickup_at",
			fmt.Errorf("%s is in the past", pickupAt.Format(time.RFC3339)))
	}
	c.pickupAt = pickupAt
	return nil
}
