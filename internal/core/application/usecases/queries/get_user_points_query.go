package queries

import (
	"errors"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrGetUserPointsQueryIsNotConstructed = errors.New(
	"GetUserPointsQuery must be created via NewGetUserPointsQuery constructor",
)

// GetUserPointsQuery sums a user's reputation ledger.
type GetUserPointsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserPointsQuery(userID kernel.UUID) (GetUserPointsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserPointsQuery{}, err
	}
	return GetUserPointsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserPointsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserPointsQueryIsNotConstructed)
}

func (q GetUserPointsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserPointsQueryResponse is the derived total. Users without entries have
// zero points and zero entries.
type GetUserPointsQueryResponse struct {
	UserID  kernel.UUID
	Points  int
	Entries int
}
