package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// DefaultUnit is used when a listing is posted without a unit of measure.
const DefaultUnit = "portions"

var (
	// ErrListingIsNotConstructed is returned when a Listing was not created through
	// NewListing or RestoreListing.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")
)

// Details is the donor-supplied description of the food on offer.
type Details struct {
	Title          string
	Description    string
	Quantity       int
	Unit           string
	PickupLocation string
}

// Listing is the aggregate root for a posted quantity of food.
//
// Listing follows these invariants:
//   - id and donorID are valid identifiers
//   - title is not blank and quantity is greater than 0
//   - status moves only forward; Expired and Delivered are terminal
//   - claimedBy is set while Claimed or Delivered and empty while Available
type Listing struct {
	id        kernel.UUID
	donorID   kernel.UUID
	details   Details
	expiresAt time.Time
	status    Status

	// claimedBy is the accepted claim, kept after expiry for auditing
	claimedBy *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewListing creates an Available listing posted at now.
//
// Validation errors for every field are joined, so a caller sees all of them at once.
// The expiry must be strictly after now.
//
// Example:
//
//	l, err := listing.NewListing(kernel.NewUUID(), donorID, listing.Details{
//	    Title:    "Bread",
//	    Quantity: 5,
//	}, now.Add(time.Hour), now)
func NewListing(id, donorID kernel.UUID, details Details, expiresAt, now time.Time) (*Listing, error) {
	l := &Listing{
		status:        Available,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setDonor(donorID),
		l.setDetails(details),
		l.setExpiresAt(expiresAt, now),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreListing rebuilds a listing from persisted state. Expiry is not compared
// with the current time, and status is checked against claimedBy instead.
func RestoreListing(
	id, donorID kernel.UUID,
	details Details,
	expiresAt time.Time,
	status Status,
	claimedBy *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Listing, error) {
	l := &Listing{
		expiresAt:     expiresAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setDonor(donorID),
		l.setDetails(details),
		l.setStatus(status, claimedBy),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the listing was built by a constructor.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

func (l *Listing) ID() kernel.UUID {
	return l.id
}

func (l *Listing) DonorID() kernel.UUID {
	return l.donorID
}

func (l *Listing) Details() Details {
	return l.details
}

func (l *Listing) Title() string {
	return l.details.Title
}

func (l *Listing) Quantity() int {
	return l.details.Quantity
}

func (l *Listing) Unit() string {
	return l.details.Unit
}

func (l *Listing) ExpiresAt() time.Time {
	return l.expiresAt
}

func (l *Listing) Status() Status {
	return l.status
}

func (l *Listing) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Listing) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *Listing) ClaimedBy() *kernel.UUID {
	return l.claimedBy
}

// IsOwnedBy reports whether userID is the donor who posted the listing.
func (l *Listing) IsOwnedBy(userID kernel.UUID) bool {
	return l.donorID.IsEqual(userID)
}

// IsClaimedBy reports whether claimID is the accepted claim of this listing.
func (l *Listing) IsClaimedBy(claimID kernel.UUID) bool {
	return l.claimedBy != nil && l.claimedBy.IsEqual(claimID)
}

// IsExpiredAt reports whether lazy expiry applies at now: the listing is still
// Available or Claimed and now is past its expiry.
func (l *Listing) IsExpiredAt(now time.Time) bool {
	return l.status.IsActive() && now.After(l.expiresAt)
}

// ExpireIfDue applies lazy expiry in memory and reports whether the status changed.
func (l *Listing) ExpireIfDue(now time.Time) bool {
	if !l.IsExpiredAt(now) {
		return false
	}
	l.status = Expired
	l.updatedAt = now
	return true
}

// MarkClaimed records claimID as the accepted claim. Only an Available listing can be claimed.
func (l *Listing) MarkClaimed(claimID kernel.UUID, now time.Time) error {
	if err := claimID.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Claim()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.claimedBy = &claimID
	l.updatedAt = now
	return nil
}

// MarkExpired moves an Available or Claimed listing to Expired.
func (l *Listing) MarkExpired(now time.Time) error {
	newStatus, err := l.status.Expire()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.updatedAt = now
	return nil
}

// MarkDelivered moves a Claimed listing to Delivered.
func (l *Listing) MarkDelivered(now time.Time) error {
	newStatus, err := l.status.Deliver()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.updatedAt = now
	return nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setDonor(donorID kernel.UUID) error {
	if donorID.IsZero() {
		return errs.NewValueIsRequiredError("donor")
	}
	l.donorID = donorID
	return nil
}

func (l *Listing) setDetails(details Details) error {
	details.Title = strings.TrimSpace(details.Title)
	details.Unit = strings.TrimSpace(details.Unit)
	if details.Unit == "" {
		details.Unit = DefaultUnit
	}

	var titleErr, quantityErr error
	if details.Title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if details.Quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", details.Quantity))
	}
	if err := errors.Join(titleErr, quantityErr); err != nil {
		return err
	}

	l.details = details
	return nil
}

func (l *Listing) setExpiresAt(expiresAt, now time.Time) error {
	if !expiresAt.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expires_at", fmt.Errorf("%s is not after %s", expiresAt.Format(time.RFC3339), now.Format(time.RFC3339)))
	}
	l.expiresAt = expiresAt
	return nil
}

func (l *Listing) setStatus(status Status, claimedBy *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if claimedBy != nil {
		if err := claimedBy.Validate(); err != nil {
			return err
		}
	}

	switch {
	case status == Available && claimedBy != nil:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("Available listing must not reference a claim"))
	case (status == Claimed || status == Delivered) && claimedBy == nil:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s listing must reference its claim", status))
	}

	l.status = status
	l.claimedBy = claimedBy
	return nil
}
