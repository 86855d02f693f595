package reputation

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

const MaxCommentLength = 2000

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is one party's rating of the other party of a completed claim.
// Eligibility depends on the claim and its delivery and is checked by the ledger.
type Review struct {
	id         kernel.UUID
	claimID    kernel.UUID
	reviewerID kernel.UUID
	revieweeID kernel.UUID
	rating     Rating
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// NewReview validates the rating first so an out-of-range value is always
// reported as InvalidRating.
func NewReview(id, claimID, reviewerID, revieweeID kernel.UUID, rating int, comment string, now time.Time) (*Review, error) {
	stars, err := NewRating(rating)
	if err != nil {
		return nil, err
	}

	r := &Review{rating: stars, createdAt: now, isConstructed: true}
	if err = errors.Join(
		r.setID(id),
		r.setClaim(claimID),
		r.setParties(reviewerID, revieweeID),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview rebuilds a persisted review.
func RestoreReview(id, claimID, reviewerID, revieweeID kernel.UUID, rating Rating, comment string, createdAt time.Time) *Review {
	return &Review{
		id:            id,
		claimID:       claimID,
		reviewerID:    reviewerID,
		revieweeID:    revieweeID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) ClaimID() kernel.UUID {
	return r.claimID
}

func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

func (r *Review) RevieweeID() kernel.UUID {
	return r.revieweeID
}

func (r *Review) Rating() Rating {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setClaim(claimID kernel.UUID) error {
	if claimID.IsZero() {
		return errs.NewValueIsRequiredError("claim")
	}
	r.claimID = claimID
	return nil
}

func (r *Review) setParties(reviewerID, revieweeID kernel.UUID) error {
	if reviewerID.IsZero() || revieweeID.IsZero() {
		return errs.NewValueIsRequiredError("reviewer and reviewee")
	}
	if reviewerID.IsEqual(revieweeID) {
		return errs.NewValueIsInvalidErrorWithCause("reviewee", errors.New("a user cannot review themselves"))
	}
	r.reviewerID = reviewerID
	r.revieweeID = revieweeID
	return nil
}

func (r *Review) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, MaxCommentLength)
	}
	r.comment = comment
	return nil
}
