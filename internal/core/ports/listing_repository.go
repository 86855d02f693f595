package ports

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
)

// ListingRepository persists listing aggregates.
type ListingRepository interface {
	// Add persists a new listing.
	Add(ctx context.Context, l *listing.Listing) error

	// Update persists the current state of an existing listing.
	Update(ctx context.Context, l *listing.Listing) error

	// Get returns the listing as stored, without evaluating expiry.
	// Returns errs.ObjectNotFoundError when no listing has the id.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	// Engines without row locks serialize writers instead.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// ExpireIfActive moves the listing to Expired only if it is still Available or
	// Claimed. It reports whether a row changed. Safe to call concurrently and
	// outside a transaction: it never overwrites Delivered.
	ExpireIfActive(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)
}
