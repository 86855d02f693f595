package claimrepo

import (
	"context"
	"errors"

	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClaimRepository implements ports.ClaimRepository using GORM.
type GormClaimRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormClaimRepository(db *gorm.DB, tracker aggregateTracker) *GormClaimRepository {
	return &GormClaimRepository{db: db, tracker: tracker}
}

func (r *GormClaimRepository) Add(ctx context.Context, c *claim.Claim) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Wrap("add claim", err)
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

func (r *GormClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).Model(&ClaimDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "listing_id", "claimant_id", "requested_at").Updates(&dto)
	if result.Error != nil {
		return sqlerr.Wrap("update claim", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("claim", c.ID().String())
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

func (r *GormClaimRepository) Get(ctx context.Context, id kernel.UUID) (*claim.Claim, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClaimDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("claim", id.String())
		}
		return nil, sqlerr.Wrap("get claim", err)
	}

	return toDomain(dto)
}

func (r *GormClaimRepository) FindByListing(ctx context.Context, listingID kernel.UUID) ([]*claim.Claim, error) {
	if err := listingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ClaimDTO
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID.Bytes()).
		Order("requested_at, id").
		Find(&dtos).Error; err != nil {
		return nil, sqlerr.Wrap("find claims by listing", err)
	}

	claims := make([]*claim.Claim, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, nil
}
