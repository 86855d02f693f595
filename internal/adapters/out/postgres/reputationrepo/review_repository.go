package reputationrepo

import (
	"context"

	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Add(ctx context.Context, review *reputation.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	dto := reviewFromDomain(review)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewDuplicateReviewErrorWithCause(review.ClaimID().String(), review.ReviewerID().String(), err)
		}
		return sqlerr.Wrap("add review", err)
	}

	return nil
}

func (r *GormReviewRepository) Exists(ctx context.Context, claimID, reviewerID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("claim_id = ? AND reviewer_id = ?", claimID.Bytes(), reviewerID.Bytes()).
		Count(&count).Error; err != nil {
		return false, sqlerr.Wrap("check review", err)
	}

	return count > 0, nil
}
