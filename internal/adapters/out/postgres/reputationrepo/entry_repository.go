package reputationrepo

import (
	"context"
	"errors"
	"strings"

	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEntryRepository implements ports.ReputationEntryRepository using GORM.
type GormEntryRepository struct {
	db *gorm.DB
}

func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// Append inserts e with ON CONFLICT DO NOTHING, so replaying a keyed award
// affects no row and reports false.
func (r *GormEntryRepository) Append(ctx context.Context, e *reputation.Entry) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}

	dto := entryFromDomain(e)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return false, sqlerr.Wrap("append reputation entry", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormEntryRepository) GetBySourceKey(ctx context.Context, sourceKey string) (*reputation.Entry, error) {
	if strings.TrimSpace(sourceKey) == "" {
		return nil, errs.NewValueIsRequiredError("sourceKey")
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "source_key = ?", sourceKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reputation entry", sourceKey)
		}
		return nil, sqlerr.Wrap("get reputation entry", err)
	}

	return entryToDomain(dto)
}

func (r *GormEntryRepository) TotalPoints(ctx context.Context, userID kernel.UUID) (int, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	var total int
	if err := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Select("COALESCE(SUM(delta), 0)").
		Where("user_id = ?", userID.Bytes()).
		Scan(&total).Error; err != nil {
		return 0, sqlerr.Wrap("sum reputation entries", err)
	}

	return total, nil
}
