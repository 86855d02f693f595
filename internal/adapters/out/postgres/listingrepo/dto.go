// Package listingrepo maps listing aggregates to the listings table.
package listingrepo

import (
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO is the row of the listings table. Status is indexed for the
// available-listings query.
type ListingDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DonorID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	Title          string     `gorm:"size:200;not null"`
	Description    string     `gorm:"type:text"`
	Quantity       int        `gorm:"not null"`
	Unit           string     `gorm:"size:50;not null"`
	PickupLocation string     `gorm:"size:500"`
	ExpiresAt      time.Time  `gorm:"not null;index"`
	Status         int        `gorm:"not null;index"`
	ClaimedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

func (ListingDTO) TableName() string {
	return "listings"
}

func fromDomain(l *listing.Listing) ListingDTO {
	var claimedBy *uuid.UUID
	if id := l.ClaimedBy(); id != nil {
		raw := id.Bytes()
		claimedBy = &raw
	}

	details := l.Details()
	return ListingDTO{
		ID:             l.ID().Bytes(),
		DonorID:        l.DonorID().Bytes(),
		Title:          details.Title,
		Description:    details.Description,
		Quantity:       details.Quantity,
		Unit:           details.Unit,
		PickupLocation: details.PickupLocation,
		ExpiresAt:      l.ExpiresAt(),
		Status:         int(l.Status()),
		ClaimedBy:      claimedBy,
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	var claimedBy *kernel.UUID
	if dto.ClaimedBy != nil {
		claimID, claimErr := kernel.UUIDFromBytes(dto.ClaimedBy[:])
		if claimErr != nil {
			return nil, claimErr
		}
		claimedBy = &claimID
	}

	return listing.RestoreListing(
		id,
		donorID,
		listing.Details{
			Title:          dto.Title,
			Description:    dto.Description,
			Quantity:       dto.Quantity,
			Unit:           dto.Unit,
			PickupLocation: dto.PickupLocation,
		},
		dto.ExpiresAt.UTC(),
		listing.Status(dto.Status),
		claimedBy,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
