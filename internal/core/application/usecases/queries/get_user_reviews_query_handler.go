package queries

import (
	"context"

	"foodshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUserReviewsQueryHandler struct {
	db *gorm.DB
}

func NewGetUserReviewsQueryHandler(db *gorm.DB) GetUserReviewsQueryHandler {
	return GetUserReviewsQueryHandler{db: db}
}

func (h GetUserReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetUserReviewsQuery,
) ([]GetUserReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]GetUserReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			claim_id,
			reviewer_id,
			rating,
			comment,
			created_at
		FROM reviews
		WHERE reviewee_id = ?
		ORDER BY created_at DESC, id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                     GetUserReviewsQueryResponse
			id, claimID, reviewerID uuid.UUID
		)

		if err = rows.Scan(&id, &claimID, &reviewerID, &resp.Rating, &resp.Comment, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClaimID, err = kernel.UUIDFromBytes(claimID[:]); err != nil {
			return nil, err
		}
		if resp.ReviewerID, err = kernel.UUIDFromBytes(reviewerID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()

		reviews = append(reviews, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
