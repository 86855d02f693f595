package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUserPointsQueryHandler struct {
	db *gorm.DB
}

func NewGetUserPointsQueryHandler(db *gorm.DB) GetUserPointsQueryHandler {
	return GetUserPointsQueryHandler{db: db}
}

func (h GetUserPointsQueryHandler) Handle(ctx context.Context, query GetUserPointsQuery) (GetUserPointsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserPointsQueryResponse{}, err
	}

	var totals struct {
		Points  int
		Entries int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(delta), 0) AS points,
			COUNT(*) AS entries
		FROM reputation_entries
		WHERE user_id = ?
	`, query.UserID().Bytes()).Scan(&totals).Error
	if err != nil {
		return GetUserPointsQueryResponse{}, err
	}

	return GetUserPointsQueryResponse{
		UserID:  query.UserID(),
		Points:  totals.Points,
		Entries: totals.Entries,
	}, nil
}
