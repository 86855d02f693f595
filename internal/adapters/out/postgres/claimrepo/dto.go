// Package claimrepo maps claim aggregates to the claims table.
package claimrepo

import (
	"time"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ClaimDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID   uuid.UUID `gorm:"type:uuid;not null;index:idx_claims_listing_status,priority:1"`
	ClaimantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      int       `gorm:"not null;index:idx_claims_listing_status,priority:2"`
	Notes       string    `gorm:"type:text"`
	PickupAt    *time.Time
	RequestedAt time.Time `gorm:"not null"`
	DecidedAt   *time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ClaimDTO) TableName() string {
	return "claims"
}

func fromDomain(c *claim.Claim) ClaimDTO {
	return ClaimDTO{
		ID:          c.ID().Bytes(),
		ListingID:   c.ListingID().Bytes(),
		ClaimantID:  c.ClaimantID().Bytes(),
		Status:      int(c.Status()),
		Notes:       c.Notes(),
		PickupAt:    c.PickupAt(),
		RequestedAt: c.RequestedAt(),
		DecidedAt:   c.DecidedAt(),
		CompletedAt: c.CompletedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func toDomain(dto ClaimDTO) (*claim.Claim, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}
	claimantID, err := kernel.UUIDFromBytes(dto.ClaimantID[:])
	if err != nil {
		return nil, err
	}

	return claim.RestoreClaim(claim.Snapshot{
		ID:          id,
		ListingID:   listingID,
		ClaimantID:  claimantID,
		Status:      claim.Status(dto.Status),
		Notes:       dto.Notes,
		PickupAt:    utc(dto.PickupAt),
		RequestedAt: dto.RequestedAt.UTC(),
		DecidedAt:   utc(dto.DecidedAt),
		CompletedAt: utc(dto.CompletedAt),
		UpdatedAt:   dto.UpdatedAt.UTC(),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
