package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per operation so concurrent
// operations never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// Repositories hands out repositories bound to the current transaction, or to the
// plain connection when no transaction was begun.
type Repositories interface {
	ListingRepository() ListingRepository
	ClaimRepository() ClaimRepository
	DeliveryRepository() DeliveryRepository
	ReputationEntryRepository() ReputationEntryRepository
	ReviewRepository() ReviewRepository
	PendingRewardRepository() PendingRewardRepository
}

// UnitOfWork is a business transaction boundary. Callers manage its lifecycle:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// repository calls through uow
//
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Repositories

	// Begin starts a transaction. Calling it twice keeps the first transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction. Returns an error if none is active.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Returns an error if none is active,
	// which makes a deferred Rollback after Commit harmless.
	Rollback(ctx context.Context) error
}
