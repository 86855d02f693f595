package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"
)

const (
	DefaultSettlementSchedule = "*/30 * * * * *"
	DefaultSettlementRetries  = 3
)

var errTransientSettlement = errors.New("reward settlement left transient failures")

// RewardSettler drains the pending reward outbox.
type RewardSettler interface {
	SettlePendingRewards(ctx context.Context, limit int) (lifecycle.SettlementReport, error)
}

// SettlementJobConfig controls how often the outbox is drained and how hard a
// single run retries.
type SettlementJobConfig struct {
	// Schedule is a six-field cron expression (seconds first).
	Schedule string
	// BatchSize is the number of rewards taken per attempt.
	BatchSize int
	// MaxRetries bounds the backoff retries inside one run.
	MaxRetries uint64
	// InitialInterval is the first backoff delay.
	InitialInterval time.Duration
}

func (c SettlementJobConfig) withDefaults() SettlementJobConfig {
	if c.Schedule == "" {
		c.Schedule = DefaultSettlementSchedule
	}
	if c.BatchSize <= 0 {
		c.BatchSize = lifecycle.DefaultSettlementBatch
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultSettlementRetries
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 500 * time.Millisecond
	}
	return c
}

// RewardSettlementJob settles completion rewards that the delivery update could
// not settle right after commit.
type RewardSettlementJob struct {
	settler RewardSettler
	cfg     SettlementJobConfig
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewRewardSettlementJob(settler RewardSettler, cfg SettlementJobConfig, logger *slog.Logger) *RewardSettlementJob {
	return &RewardSettlementJob{
		settler: settler,
		cfg:     cfg.withDefaults(),
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reward_settlement_job"),
	}
}

// Start schedules the job. A malformed schedule is returned as an error.
func (j *RewardSettlementJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Reward settlement job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid settlement schedule %q: %w", j.cfg.Schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reward settlement job started", "schedule", j.cfg.Schedule)
	return nil
}

// RunOnce drains one batch, retrying with exponential backoff while failures
// look transient. Rewards that keep failing stay in the outbox for the next run.
func (j *RewardSettlementJob) RunOnce(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = j.cfg.InitialInterval
	policy.MaxElapsedTime = 0

	var total lifecycle.SettlementReport
	operation := func() error {
		report, err := j.settler.SettlePendingRewards(ctx, j.cfg.BatchSize)
		if err != nil {
			if errors.Is(err, errs.ErrPersistenceFailure) {
				return err
			}
			return backoff.Permanent(err)
		}

		total.Settled += report.Settled
		total.Failed = report.Failed
		if report.Transient {
			return errTransientSettlement
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, j.cfg.MaxRetries), ctx))
	if total.Settled > 0 || total.Failed > 0 {
		j.logger.InfoContext(ctx, "Reward settlement run finished",
			"settled", total.Settled,
			"failed", total.Failed,
		)
	}
	return err
}

func (j *RewardSettlementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reward settlement job stopped")
}
