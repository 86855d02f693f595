package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/model/reputation"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/core/ports"
	"foodshare/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultSettlementBatch bounds how many pending rewards one settlement run handles.
const DefaultSettlementBatch = 100

// AcceptedClaim is the result of a claim decision. Delivery is set once the
// claim is Accepted, including on an idempotent re-accept.
type AcceptedClaim struct {
	Claim    *claim.Claim
	Delivery *delivery.Delivery
	Rejected []*claim.Claim
}

// SettlementReport counts the outcome of one settlement run.
type SettlementReport struct {
	Settled int
	Failed  int
	// Transient reports that at least one failure may succeed on retry.
	Transient bool
}

// Orchestrator is the facade adapters call for every lifecycle event.
//
// Example:
//
//	orchestrator, err := lifecycle.NewOrchestrator(uowFactory, keylock.New(),
//	    services.DefaultRewardPolicy(), kernel.SystemClock{}, logger)
//	if err != nil {
//	    return err
//	}
//	cmd, _ := commands.NewDecideClaimCommand(donor, claimID, true)
//	decision, err := orchestrator.DecideClaim(ctx, cmd)
type Orchestrator struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.ListingLocker
	clock      kernel.Clock
	logger     *slog.Logger
	tel        *instruments

	listings   *ListingStore
	claims     *ClaimCoordinator
	deliveries *DeliveryTracker
	ledger     *ReputationLedger
}

func NewOrchestrator(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.ListingLocker,
	policy services.RewardPolicy,
	clock kernel.Clock,
	logger *slog.Logger,
) (*Orchestrator, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if locker == nil {
		return nil, errs.NewValueIsRequiredError("locker")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	tel, err := newInstruments()
	if err != nil {
		return nil, err
	}

	listings := NewListingStore(clock)
	return &Orchestrator{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		logger:     logger.With("component", "lifecycle_orchestrator"),
		tel:        tel,
		listings:   listings,
		claims:     NewClaimCoordinator(listings, clock),
		deliveries: NewDeliveryTracker(clock),
		ledger:     NewReputationLedger(listings, policy, clock),
	}, nil
}

// CreateListing posts a listing for the acting donor.
func (o *Orchestrator) CreateListing(ctx context.Context, cmd commands.CreateListingCommand) (_ *listing.Listing, err error) {
	ctx, span := o.tel.start(ctx, "create_listing")
	defer func() { end(span, err) }()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor().CanDonate() {
		return nil, errs.NewNotPermittedError(cmd.Actor().ID().String(), "post listings")
	}

	var created *listing.Listing
	err = o.inTx(ctx, func(repos ports.Repositories) error {
		l, err := o.listings.Create(ctx, repos, cmd.ListingID(), cmd.Actor().ID(), cmd.Details(), cmd.ExpiresAt())
		created = l
		return err
	})
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "listing created", "listing_id", created.ID(), "donor_id", created.DonorID())
	return created, nil
}

// GetListing returns a listing, persisting lazy expiry when it is due.
func (o *Orchestrator) GetListing(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	return o.listings.Get(ctx, o.uowFactory.Create(), id)
}

func (o *Orchestrator) GetClaim(ctx context.Context, id kernel.UUID) (*claim.Claim, error) {
	return o.uowFactory.Create().ClaimRepository().Get(ctx, id)
}

func (o *Orchestrator) GetDelivery(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return o.uowFactory.Create().DeliveryRepository().Get(ctx, id)
}

// RequestClaim opens a Pending claim for the acting recipient or NGO.
func (o *Orchestrator) RequestClaim(ctx context.Context, cmd commands.RequestClaimCommand) (_ *claim.Claim, err error) {
	ctx, span := o.tel.start(ctx, "request_claim", attribute.String("listing.id", cmd.ListingID().String()))
	defer func() { end(span, err) }()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor().CanClaim() {
		return nil, errs.NewNotPermittedError(cmd.Actor().ID().String(), "claim listings")
	}

	var requested *claim.Claim
	err = o.inListingTx(ctx, cmd.ListingID(), func(repos ports.Repositories) error {
		c, err := o.claims.RequestClaim(ctx, repos,
			cmd.ClaimID(), cmd.ListingID(), cmd.Actor().ID(), cmd.Notes(), cmd.PickupAt())
		requested = c
		return err
	})
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "claim requested",
		"claim_id", requested.ID(), "listing_id", requested.ListingID(), "claimant_id", requested.ClaimantID())
	return requested, nil
}

// DecideClaim accepts or rejects a claim. Accepting starts its delivery in the
// same transaction.
func (o *Orchestrator) DecideClaim(ctx context.Context, cmd commands.DecideClaimCommand) (_ AcceptedClaim, err error) {
	ctx, span := o.tel.start(ctx, "decide_claim",
		attribute.String("claim.id", cmd.ClaimID().String()),
		attribute.Bool("claim.accept", cmd.Accept()))
	defer func() { end(span, err) }()

	if err := cmd.Validate(); err != nil {
		return AcceptedClaim{}, err
	}

	pending, err := o.GetClaim(ctx, cmd.ClaimID())
	if err != nil {
		return AcceptedClaim{}, err
	}

	var result AcceptedClaim
	err = o.inListingTx(ctx, pending.ListingID(), func(repos ports.Repositories) error {
		decision, err := o.claims.Decide(ctx, repos, cmd.ClaimID(), cmd.Actor(), cmd.Accept())
		if err != nil {
			return err
		}
		result = AcceptedClaim{Claim: decision.Claim, Rejected: decision.Rejected}

		switch {
		case decision.AlreadyAccepted:
			result.Delivery, err = repos.DeliveryRepository().GetByClaim(ctx, decision.Claim.ID())
			return err
		case decision.Accepted():
			result.Delivery, err = o.deliveries.Start(ctx, repos, decision.Claim)
			return err
		default:
			return nil
		}
	})
	if err != nil {
		return AcceptedClaim{}, err
	}

	o.tel.claimsDecided.Add(ctx, 1, metric.WithAttributes(attribute.String("status", result.Claim.Status().String())))
	o.logger.InfoContext(ctx, "claim decided",
		"claim_id", result.Claim.ID(),
		"status", result.Claim.Status().String(),
		"auto_rejected", len(result.Rejected))
	return result, nil
}

// UpdateDelivery advances a delivery and/or records its position. Reaching
// Delivered completes the claim and schedules rewards in the same transaction;
// the rewards are settled after commit on a best-effort basis.
func (o *Orchestrator) UpdateDelivery(
	ctx context.Context,
	cmd commands.UpdateDeliveryCommand,
) (_ *delivery.Delivery, err error) {
	ctx, span := o.tel.start(ctx, "update_delivery", attribute.String("delivery.id", cmd.DeliveryID().String()))
	defer func() { end(span, err) }()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := o.GetDelivery(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	var (
		updated   *delivery.Delivery
		delivered bool
		scheduled []*reputation.PendingReward
	)
	err = o.inListingTx(ctx, current.ListingID(), func(repos ports.Repositories) error {
		d, err := repos.DeliveryRepository().Get(ctx, cmd.DeliveryID())
		if err != nil {
			return err
		}
		c, err := repos.ClaimRepository().Get(ctx, d.ClaimID())
		if err != nil {
			return err
		}
		l, err := o.listings.Lock(ctx, repos, d.ListingID())
		if err != nil {
			return err
		}
		if err := o.deliveries.Authorize(l, c, cmd.Actor()); err != nil {
			return err
		}

		if cmd.HasStatus() {
			delivered, err = o.deliveries.Advance(ctx, repos, d, cmd.Status(), cmd.Agent())
			if err != nil {
				return err
			}
			if delivered {
				if err := o.claims.Complete(ctx, repos, l, c); err != nil {
					return err
				}
				if scheduled, err = o.ledger.ScheduleCompletionRewards(ctx, repos, l, c); err != nil {
					return err
				}
			}
		}

		if cmd.HasPosition() {
			if err := o.deliveries.UpdatePosition(ctx, repos, d, *cmd.Position(), cmd.ETA()); err != nil {
				return err
			}
		}

		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	if delivered {
		o.tel.deliveriesCompleted.Add(ctx, 1)
		o.logger.InfoContext(ctx, "delivery completed",
			"delivery_id", updated.ID(), "claim_id", updated.ClaimID(), "listing_id", updated.ListingID())
		for _, reward := range scheduled {
			if err := o.settle(ctx, reward.ID()); err != nil {
				o.logger.WarnContext(ctx, "reward settlement deferred",
					"reward_id", reward.ID(), "claim_id", reward.ClaimID(), "error", err)
			}
		}
	}

	return updated, nil
}

// RecordReview stores the acting user's review of the other party of a claim.
func (o *Orchestrator) RecordReview(ctx context.Context, cmd commands.RecordReviewCommand) (_ *reputation.Review, err error) {
	ctx, span := o.tel.start(ctx, "record_review", attribute.String("claim.id", cmd.ClaimID().String()))
	defer func() { end(span, err) }()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var review *reputation.Review
	err = o.inTx(ctx, func(repos ports.Repositories) error {
		r, err := o.ledger.RecordReview(ctx, repos,
			cmd.ReviewID(), cmd.ClaimID(), cmd.Actor().ID(), cmd.RevieweeID(), cmd.Rating(), cmd.Comment())
		review = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// AwardPoints appends a manual adjustment. Only admins may award points.
// The boolean is false when the source key had already been used.
func (o *Orchestrator) AwardPoints(
	ctx context.Context,
	cmd commands.AwardPointsCommand,
) (_ *reputation.Entry, _ bool, err error) {
	ctx, span := o.tel.start(ctx, "award_points")
	defer func() { end(span, err) }()

	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}
	if !cmd.Actor().IsAdmin() {
		return nil, false, errs.NewNotPermittedError(cmd.Actor().ID().String(), "award points")
	}

	var (
		entry   *reputation.Entry
		created bool
	)
	err = o.inTx(ctx, func(repos ports.Repositories) error {
		var err error
		entry, created, err = o.ledger.AwardPoints(ctx, repos,
			cmd.EntryID(), cmd.UserID(), cmd.Delta(), cmd.Reason(), cmd.SourceKey())
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return entry, created, nil
}

func (o *Orchestrator) TotalPoints(ctx context.Context, userID kernel.UUID) (int, error) {
	return o.ledger.TotalPoints(ctx, o.uowFactory.Create(), userID)
}

// SettlePendingRewards settles up to limit unsettled rewards, oldest first. It
// returns an error only when the outbox cannot be read.
func (o *Orchestrator) SettlePendingRewards(ctx context.Context, limit int) (_ SettlementReport, err error) {
	ctx, span := o.tel.start(ctx, "settle_pending_rewards", attribute.Int("batch.limit", limit))
	defer func() { end(span, err) }()

	if limit <= 0 {
		limit = DefaultSettlementBatch
	}

	pending, err := o.uowFactory.Create().PendingRewardRepository().FindUnsettled(ctx, limit)
	if err != nil {
		return SettlementReport{}, err
	}

	var report SettlementReport
	for _, reward := range pending {
		if err := o.settle(ctx, reward.ID()); err != nil {
			report.Failed++
			if errors.Is(err, errs.ErrPersistenceFailure) {
				report.Transient = true
			}
			o.logger.WarnContext(ctx, "reward settlement failed",
				"reward_id", reward.ID(), "attempts", reward.Attempts()+1, "error", err)
			continue
		}
		report.Settled++
	}

	span.SetAttributes(attribute.Int("rewards.settled", report.Settled), attribute.Int("rewards.failed", report.Failed))
	return report, nil
}

// settle runs one settlement in its own transaction and records a failure on the
// reward when it does not go through.
func (o *Orchestrator) settle(ctx context.Context, rewardID kernel.UUID) error {
	err := o.inTx(ctx, func(repos ports.Repositories) error {
		_, err := o.ledger.Settle(ctx, repos, rewardID)
		return err
	})
	if err == nil {
		o.tel.rewardsSettled.Add(ctx, 1)
		return nil
	}

	o.tel.settlementFailures.Add(ctx, 1)
	recordErr := o.inTx(ctx, func(repos ports.Repositories) error {
		return o.ledger.RecordSettlementFailure(ctx, repos, rewardID, err)
	})
	if recordErr != nil {
		o.logger.ErrorContext(ctx, "failed to record settlement failure", "reward_id", rewardID, "error", recordErr)
	}
	return err
}

// inListingTx runs fn in a transaction inside the listing's critical section.
// Lazy expiry is resolved before the transaction so that it persists even when
// fn fails.
func (o *Orchestrator) inListingTx(ctx context.Context, listingID kernel.UUID, fn func(ports.Repositories) error) error {
	unlock, err := o.locker.Lock(ctx, listingID.String())
	if err != nil {
		return fmt.Errorf("lock listing %s: %w", listingID, err)
	}
	defer unlock()

	if _, err := o.listings.Get(ctx, o.uowFactory.Create(), listingID); err != nil {
		return err
	}

	return o.inTx(ctx, fn)
}

func (o *Orchestrator) inTx(ctx context.Context, fn func(ports.Repositories) error) error {
	uow := o.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
