// Package postgres implements the persistence ports with GORM. PostgreSQL is the
// production engine; SQLite backs local runs and fast tests with the same schema.
//
// A GormUnitOfWork binds every repository it hands out to its transaction:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	l, err := uow.ListingRepository().GetForUpdate(ctx, listingID)
//	// ...
//	return uow.Commit(ctx)
//
// Without Begin, repositories run directly on the connection pool.
package postgres

import (
	"context"
	"io"
	"log/slog"

	"foodshare/internal/adapters/out/postgres/claimrepo"
	"foodshare/internal/adapters/out/postgres/deliveryrepo"
	"foodshare/internal/adapters/out/postgres/listingrepo"
	"foodshare/internal/adapters/out/postgres/reputationrepo"
	"foodshare/internal/adapters/out/postgres/sqlerr"
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates isolated unit of work instances over one *gorm.DB.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

type FactoryOption func(*GormUnitOfWorkFactory)

// WithLogger makes every unit of work log the aggregates written by each commit
// at debug level.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.logger = logger.With("component", "unit_of_work")
	}
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories until the transaction ends.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. A second call while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return sqlerr.Wrap("begin transaction", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	written := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return sqlerr.Wrap("commit transaction", err)
	}

	if len(written) > 0 && uow.logger.Enabled(ctx, slog.LevelDebug) {
		ids := make([]string, len(written))
		kinds := make([]string, len(written))
		for i, a := range written {
			ids[i] = a.ID.String()
			kinds[i] = aggregateKind(a.Aggregate)
		}
		uow.logger.DebugContext(ctx, "transaction committed",
			"aggregates", len(written), "ids", ids, "kinds", kinds)
	}
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) ListingRepository() ports.ListingRepository {
	return listingrepo.NewGormListingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ClaimRepository() ports.ClaimRepository {
	return claimrepo.NewGormClaimRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReputationEntryRepository() ports.ReputationEntryRepository {
	return reputationrepo.NewGormEntryRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reputationrepo.NewGormReviewRepository(uow.conn())
}

func (uow *GormUnitOfWork) PendingRewardRepository() ports.PendingRewardRepository {
	return reputationrepo.NewGormPendingRewardRepository(uow.conn())
}

// TrackAggregate registers an aggregate written by a repository of this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregate writes the current transaction made.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *listing.Listing:
		return "listing"
	case *claim.Claim:
		return "claim"
	case *delivery.Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
