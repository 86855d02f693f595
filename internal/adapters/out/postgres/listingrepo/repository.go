package listingrepo

import (
	"context"
	"errors"
	"time"

	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormListingRepository implements ports.ListingRepository using GORM.
type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{db: db, tracker: tracker}
}

func (r *GormListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("add listing", err)
	}

	r.tracker.TrackAggregate(l.ID(), l)
	return nil
}

func (r *GormListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	result := r.db.WithContext(ctx).Model(&ListingDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return sqlerr.Wrap("update listing", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("listing", l.ID().String())
	}

	r.tracker.TrackAggregate(l.ID(), l)
	return nil
}

func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormListingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormListingRepository) ExpireIfActive(ctx context.Context, id kernel.UUID, at time.Time) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&ListingDTO{}).
		Where("id = ? AND status IN ?", id.Bytes(), []int{int(listing.Available), int(listing.Claimed)}).
		Updates(map[string]any{
			"status":     int(listing.Expired),
			"updated_at": at,
		})
	if result.Error != nil {
		return false, sqlerr.Wrap("expire listing", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormListingRepository) get(db *gorm.DB, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing", id.String())
		}
		return nil, sqlerr.Wrap("get listing", err)
	}

	return toDomain(dto)
}
