package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrListingUnavailable = errors.New("listing unavailable")
	ErrNotEligible        = errors.New("not eligible")
	ErrDuplicateReview    = errors.New("duplicate review")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrNotPermitted       = errors.New("not permitted")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// InvalidTransitionError reports a status change that the entity's state machine does not allow.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Entity, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ListingUnavailableError is returned when a claim race is lost or the listing left Available.
type ListingUnavailableError struct {
	ListingID string
	Reason    string
}

func NewListingUnavailableError(listingID, reason string) *ListingUnavailableError {
	return &ListingUnavailableError{ListingID: listingID, Reason: reason}
}

func (e *ListingUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrListingUnavailable, e.ListingID, e.Reason)
}

func (e *ListingUnavailableError) Unwrap() error {
	return ErrListingUnavailable
}

// NotEligibleError is returned when a review or reward precedes the completion of its claim.
type NotEligibleError struct {
	Subject string
	Reason  string
}

func NewNotEligibleError(subject, reason string) *NotEligibleError {
	return &NotEligibleError{Subject: subject, Reason: reason}
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrNotEligible, e.Subject, e.Reason)
}

func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}

// DuplicateReviewError is returned for a second review of the same claim by the same reviewer.
type DuplicateReviewError struct {
	ClaimID    string
	ReviewerID string
	Cause      error
}

func NewDuplicateReviewError(claimID, reviewerID string) *DuplicateReviewError {
	return &DuplicateReviewError{ClaimID: claimID, ReviewerID: reviewerID}
}

func NewDuplicateReviewErrorWithCause(claimID, reviewerID string, cause error) *DuplicateReviewError {
	return &DuplicateReviewError{ClaimID: claimID, ReviewerID: reviewerID, Cause: cause}
}

func (e *DuplicateReviewError) Error() string {
	msg := fmt.Sprintf("%s: claim %s already reviewed by %s", ErrDuplicateReview, e.ClaimID, e.ReviewerID)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DuplicateReviewError) Unwrap() error {
	return ErrDuplicateReview
}

// InvalidRatingError reports a rating outside [Min, Max].
type InvalidRatingError struct {
	Rating int
	Min    int
	Max    int
}

func NewInvalidRatingError(rating, minRating, maxRating int) *InvalidRatingError {
	return &InvalidRatingError{Rating: rating, Min: minRating, Max: maxRating}
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("%s: %d is not within %d..%d", ErrInvalidRating, e.Rating, e.Min, e.Max)
}

func (e *InvalidRatingError) Unwrap() error {
	return ErrInvalidRating
}

// NotPermittedError is returned when the acting user has no capability for the operation.
type NotPermittedError struct {
	ActorID string
	Action  string
}

func NewNotPermittedError(actorID, action string) *NotPermittedError {
	return &NotPermittedError{ActorID: actorID, Action: action}
}

func (e *NotPermittedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrNotPermitted, e.ActorID, e.Action)
}

func (e *NotPermittedError) Unwrap() error {
	return ErrNotPermitted
}

// PersistenceFailureError wraps a transient storage failure. Callers may retry with backoff.
type PersistenceFailureError struct {
	Operation string
	Cause     error
}

func NewPersistenceFailureError(operation string, cause error) *PersistenceFailureError {
	return &PersistenceFailureError{Operation: operation, Cause: cause}
}

func (e *PersistenceFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistenceFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailure, e.Operation)
}

func (e *PersistenceFailureError) Unwrap() error {
	return ErrPersistenceFailure
}
