package deliveryrepo

import (
	"context"
	"errors"

	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db, tracker: tracker}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("add delivery", err)
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "claim_id", "listing_id", "created_at").Updates(&dto)
	if result.Error != nil {
		return sqlerr.Wrap("update delivery", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", d.ID().String())
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "delivery", id.String(), "id = ?", id.Bytes())
}

func (r *GormDeliveryRepository) GetByClaim(ctx context.Context, claimID kernel.UUID) (*delivery.Delivery, error) {
	if err := claimID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "delivery of claim", claimID.String(), "claim_id = ?", claimID.Bytes())
}

func (r *GormDeliveryRepository) first(ctx context.Context, param, id string, query string, args ...any) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, sqlerr.Wrap("get "+param, err)
	}

	return toDomain(dto)
}
