package ports

import (
	"context"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/kernel"
)

// ClaimRepository persists claim aggregates.
type ClaimRepository interface {
	Add(ctx context.Context, c *claim.Claim) error
	Update(ctx context.Context, c *claim.Claim) error

	// Get returns errs.ObjectNotFoundError when no claim has the id.
	Get(ctx context.Context, id kernel.UUID) (*claim.Claim, error)

	// FindByListing returns every claim of a listing, oldest request first.
	FindByListing(ctx context.Context, listingID kernel.UUID) ([]*claim.Claim, error)
}
