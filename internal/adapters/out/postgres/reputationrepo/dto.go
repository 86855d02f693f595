// Package reputationrepo maps the reputation ledger (entries, reviews and pending
// rewards) to its tables.
package reputationrepo

import (
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/reputation"

	"github.com/google/uuid"
)

// EntryDTO is a ledger row. SourceKey is NULL for awards without an idempotency
// key so the unique index only constrains keyed awards.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Delta     int       `gorm:"not null"`
	Reason    string    `gorm:"size:500;not null"`
	SourceKey *string   `gorm:"size:128;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

func (EntryDTO) TableName() string {
	return "reputation_entries"
}

type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClaimID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_claim_reviewer,priority:1"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_claim_reviewer,priority:2"`
	RevieweeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

type PendingRewardDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClaimID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null"`
	Delta     int        `gorm:"not null"`
	Reason    string     `gorm:"size:500;not null"`
	SourceKey string     `gorm:"size:128;not null;uniqueIndex"`
	Attempts  int        `gorm:"not null;default:0"`
	LastError string     `gorm:"size:512"`
	SettledAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (PendingRewardDTO) TableName() string {
	return "pending_rewards"
}

func entryFromDomain(e *reputation.Entry) EntryDTO {
	var sourceKey *string
	if key := e.SourceKey(); key != "" {
		sourceKey = &key
	}
	return EntryDTO{
		ID:        e.ID().Bytes(),
		UserID:    e.UserID().Bytes(),
		Delta:     e.Delta(),
		Reason:    e.Reason(),
		SourceKey: sourceKey,
		CreatedAt: e.CreatedAt(),
	}
}

func entryToDomain(dto EntryDTO) (*reputation.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var sourceKey string
	if dto.SourceKey != nil {
		sourceKey = *dto.SourceKey
	}
	return reputation.RestoreEntry(id, userID, dto.Delta, dto.Reason, sourceKey, dto.CreatedAt.UTC()), nil
}

func reviewFromDomain(r *reputation.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID().Bytes(),
		ClaimID:    r.ClaimID().Bytes(),
		ReviewerID: r.ReviewerID().Bytes(),
		RevieweeID: r.RevieweeID().Bytes(),
		Rating:     r.Rating().Int(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}

func pendingRewardFromDomain(p *reputation.PendingReward) PendingRewardDTO {
	return PendingRewardDTO{
		ID:        p.ID().Bytes(),
		ClaimID:   p.ClaimID().Bytes(),
		UserID:    p.UserID().Bytes(),
		Delta:     p.Delta(),
		Reason:    p.Reason(),
		SourceKey: p.SourceKey(),
		Attempts:  p.Attempts(),
		LastError: p.LastError(),
		SettledAt: p.SettledAt(),
		CreatedAt: p.CreatedAt(),
	}
}

func pendingRewardToDomain(dto PendingRewardDTO) (*reputation.PendingReward, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	claimID, err := kernel.UUIDFromBytes(dto.ClaimID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var settledAt *time.Time
	if dto.SettledAt != nil {
		v := dto.SettledAt.UTC()
		settledAt = &v
	}

	return reputation.RestorePendingReward(reputation.PendingRewardSnapshot{
		ID:        id,
		ClaimID:   claimID,
		UserID:    userID,
		Delta:     dto.Delta,
		Reason:    dto.Reason,
		SourceKey: dto.SourceKey,
		Attempts:  dto.Attempts,
		LastError: dto.LastError,
		SettledAt: settledAt,
		CreatedAt: dto.CreatedAt.UTC(),
	}), nil
}
