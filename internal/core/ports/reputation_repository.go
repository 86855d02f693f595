package ports

import (
	"context"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/reputation"
)

// ReputationEntryRepository is the append-only point ledger.
type ReputationEntryRepository interface {
	// Append stores e unless an entry with the same non-empty source key exists.
	// It reports whether e was stored.
	Append(ctx context.Context, e *reputation.Entry) (bool, error)

	// GetBySourceKey returns the entry stored under sourceKey.
	GetBySourceKey(ctx context.Context, sourceKey string) (*reputation.Entry, error)

	// TotalPoints sums every entry of the user. Users without entries have 0 points.
	TotalPoints(ctx context.Context, userID kernel.UUID) (int, error)
}

// ReviewRepository stores reviews, unique per (claim, reviewer).
type ReviewRepository interface {
	// Add returns errs.DuplicateReviewError when the reviewer already reviewed the claim.
	Add(ctx context.Context, r *reputation.Review) error

	Exists(ctx context.Context, claimID, reviewerID kernel.UUID) (bool, error)
}

// PendingRewardRepository is the outbox of completion rewards awaiting settlement.
type PendingRewardRepository interface {
	// Add stores p; a reward whose source key already exists is skipped.
	Add(ctx context.Context, p *reputation.PendingReward) error
	Update(ctx context.Context, p *reputation.PendingReward) error
	Get(ctx context.Context, id kernel.UUID) (*reputation.PendingReward, error)

	// FindUnsettled returns up to limit unsettled rewards, oldest first.
	FindUnsettled(ctx context.Context, limit int) ([]*reputation.PendingReward, error)
}
