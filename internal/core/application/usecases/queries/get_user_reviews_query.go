package queries

import (
	"errors"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrGetUserReviewsQueryIsNotConstructed = errors.New(
	"GetUserReviewsQuery must be created via NewGetUserReviewsQuery constructor",
)

// GetUserReviewsQuery lists the reviews a user received, newest first.
type GetUserReviewsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserReviewsQuery(userID kernel.UUID) (GetUserReviewsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserReviewsQuery{}, err
	}
	return GetUserReviewsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserReviewsQueryIsNotConstructed)
}

func (q GetUserReviewsQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUserReviewsQueryResponse struct {
	ID         kernel.UUID
	ClaimID    kernel.UUID
	ReviewerID kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
