// Package deliveryrepo maps delivery aggregates to the deliveries table.
package deliveryrepo

import (
	"time"

	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the row of the deliveries table. claim_id is unique: one
// delivery per accepted claim.
type DeliveryDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ClaimID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex"`
	ListingID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status      int         `gorm:"not null"`
	Agent       string      `gorm:"size:200"`
	Position    PositionDTO `gorm:"embedded;embeddedPrefix:position_"`
	ETA         *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	DeliveredAt *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// PositionDTO holds the last reported coordinates; both are NULL until reported.
type PositionDTO struct {
	Latitude  *float64
	Longitude *float64
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var position PositionDTO
	if p := d.Position(); p != nil {
		lat, long := p.Latitude(), p.Longitude()
		position = PositionDTO{Latitude: &lat, Longitude: &long}
	}

	return DeliveryDTO{
		ID:          d.ID().Bytes(),
		ClaimID:     d.ClaimID().Bytes(),
		ListingID:   d.ListingID().Bytes(),
		Status:      int(d.Status()),
		Agent:       d.Agent(),
		Position:    position,
		ETA:         d.ETA(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
		DeliveredAt: d.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	claimID, err := kernel.UUIDFromBytes(dto.ClaimID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	var position *kernel.Position
	if dto.Position.Latitude != nil && dto.Position.Longitude != nil {
		p, posErr := kernel.NewPosition(*dto.Position.Latitude, *dto.Position.Longitude)
		if posErr != nil {
			return nil, posErr
		}
		position = &p
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:          id,
		ClaimID:     claimID,
		ListingID:   listingID,
		Status:      delivery.Status(dto.Status),
		Agent:       dto.Agent,
		Position:    position,
		ETA:         utc(dto.ETA),
		CreatedAt:   dto.CreatedAt.UTC(),
		UpdatedAt:   dto.UpdatedAt.UTC(),
		DeliveredAt: utc(dto.DeliveredAt),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
