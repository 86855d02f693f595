package lifecycle

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/core/ports"
)

// ListingStore holds listings and resolves lazy expiry on every read. The reader
// that expires a listing also rejects its Pending claims.
type ListingStore struct {
	clock   kernel.Clock
	arbiter services.ClaimArbiter
}

func NewListingStore(clock kernel.Clock) *ListingStore {
	return &ListingStore{clock: clock, arbiter: services.NewClaimArbiter()}
}

// Create validates and stores a new Available listing.
func (s *ListingStore) Create(
	ctx context.Context,
	repos ports.Repositories,
	id, donorID kernel.UUID,
	details listing.Details,
	expiresAt time.Time,
) (*listing.Listing, error) {
	l, err := listing.NewListing(id, donorID, details, expiresAt, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := repos.ListingRepository().Add(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns the listing with lazy expiry applied and persisted.
func (s *ListingStore) Get(ctx context.Context, repos ports.Repositories, id kernel.UUID) (*listing.Listing, error) {
	l, err := repos.ListingRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveExpiry(ctx, repos, l)
}

// Lock reads the listing with a row lock for the rest of the transaction and
// applies lazy expiry to it.
func (s *ListingStore) Lock(ctx context.Context, repos ports.Repositories, id kernel.UUID) (*listing.Listing, error) {
	l, err := repos.ListingRepository().GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveExpiry(ctx, repos, l)
}

// Save persists a status change made on a locked listing.
func (s *ListingStore) Save(ctx context.Context, repos ports.Repositories, l *listing.Listing) error {
	return repos.ListingRepository().Update(ctx, l)
}

func (s *ListingStore) resolveExpiry(
	ctx context.Context,
	repos ports.Repositories,
	l *listing.Listing,
) (*listing.Listing, error) {
	now := s.clock.Now()
	if !l.IsExpiredAt(now) {
		return l, nil
	}

	changed, err := repos.ListingRepository().ExpireIfActive(ctx, l.ID(), now)
	if err != nil {
		return nil, err
	}
	if !changed {
		// A concurrent writer moved the listing first; report what it stored.
		return repos.ListingRepository().Get(ctx, l.ID())
	}

	l.ExpireIfDue(now)
	if err := s.closeClaims(ctx, repos, l, now); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListingStore) closeClaims(ctx context.Context, repos ports.Repositories, l *listing.Listing, now time.Time) error {
	claims, err := repos.ClaimRepository().FindByListing(ctx, l.ID())
	if err != nil {
		return err
	}

	rejected, err := s.arbiter.CloseExpired(l, claims, now)
	if err != nil {
		return err
	}
	for _, c := range rejected {
		if err := repos.ClaimRepository().Update(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
