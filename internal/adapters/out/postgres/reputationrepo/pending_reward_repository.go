package reputationrepo

import (
	"context"
	"errors"

	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPendingRewardRepository implements ports.PendingRewardRepository using GORM.
type GormPendingRewardRepository struct {
	db *gorm.DB
}

func NewGormPendingRewardRepository(db *gorm.DB) *GormPendingRewardRepository {
	return &GormPendingRewardRepository{db: db}
}

func (r *GormPendingRewardRepository) Add(ctx context.Context, p *reputation.PendingReward) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := pendingRewardFromDomain(p)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("add pending reward", err)
	}

	return nil
}

func (r *GormPendingRewardRepository) Update(ctx context.Context, p *reputation.PendingReward) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := pendingRewardFromDomain(p)
	result := r.db.WithContext(ctx).Model(&PendingRewardDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"attempts":   dto.Attempts,
			"last_error": dto.LastError,
			"settled_at": dto.SettledAt,
		})
	if result.Error != nil {
		return sqlerr.Wrap("update pending reward", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pending reward", p.ID().String())
	}

	return nil
}

func (r *GormPendingRewardRepository) Get(ctx context.Context, id kernel.UUID) (*reputation.PendingReward, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PendingRewardDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending reward", id.String())
		}
		return nil, sqlerr.Wrap("get pending reward", err)
	}

	return pendingRewardToDomain(dto)
}

func (r *GormPendingRewardRepository) FindUnsettled(ctx context.Context, limit int) ([]*reputation.PendingReward, error) {
	var dtos []PendingRewardDTO
	if err := r.db.WithContext(ctx).
		Where("settled_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, sqlerr.Wrap("find unsettled rewards", err)
	}

	rewards := make([]*reputation.PendingReward, 0, len(dtos))
	for _, dto := range dtos {
		p, err := pendingRewardToDomain(dto)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, p)
	}

	return rewards, nil
}
