package queries

import (
	"errors"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var ErrGetAvailableListingsQueryIsNotConstructed = errors.New(
	"GetAvailableListingsQuery must be created via NewGetAvailableListingsQuery constructor",
)

// GetAvailableListingsQuery pages through listings that can still be claimed at
// a given instant, soonest expiry first.
//
// Example:
//
//	query, err := NewGetAvailableListingsQuery(time.Now(), 20, 0)
//	if err != nil {
//	    return err
//	}
//	listings, err := handler.Handle(ctx, query)
type GetAvailableListingsQuery struct {
	now    time.Time
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetAvailableListingsQuery uses DefaultPageSize for a zero limit and caps it at MaxPageSize.
func NewGetAvailableListingsQuery(now time.Time, limit, offset int) (GetAvailableListingsQuery, error) {
	if now.IsZero() {
		return GetAvailableListingsQuery{}, errs.NewValueIsRequiredError("now")
	}
	if limit < 0 {
		return GetAvailableListingsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxPageSize)
	}
	if offset < 0 {
		return GetAvailableListingsQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if limit == 0 {
		limit = DefaultPageSize
	}

	return GetAvailableListingsQuery{
		now:    now.UTC(),
		limit:  min(limit, MaxPageSize),
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableListingsQueryIsNotConstructed)
}

func (q GetAvailableListingsQuery) Now() time.Time {
	return q.now
}

func (q GetAvailableListingsQuery) Limit() int {
	return q.limit
}

func (q GetAvailableListingsQuery) Offset() int {
	return q.offset
}

// GetAvailableListingsQueryResponse is one claimable listing.
type GetAvailableListingsQueryResponse struct {
	ID             kernel.UUID
	DonorID        kernel.UUID
	Title          string
	Description    string
	Quantity       int
	Unit           string
	PickupLocation string
	ExpiresAt      time.Time
	CreatedAt      time.Time
}
