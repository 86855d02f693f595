package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/jobs"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettler struct {
	mock.Mock
}

func (m *MockSettler) SettlePendingRewards(ctx context.Context, limit int) (lifecycle.SettlementReport, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(lifecycle.SettlementReport), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastConfig() jobs.SettlementJobConfig {
	return jobs.SettlementJobConfig{
		Schedule:        "@every 1h",
		BatchSize:       10,
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
	}
}

func TestRewardSettlementJob_RunOnce_Clean(t *testing.T) {
	settler := new(MockSettler)
	settler.On("SettlePendingRewards", mock.Anything, 10).
		Return(lifecycle.SettlementReport{Settled: 4}, nil).Once()

	job := jobs.NewRewardSettlementJob(settler, fastConfig(), discardLogger())

	require.NoError(t, job.RunOnce(t.Context()))
	settler.AssertExpectations(t)
}

func TestRewardSettlementJob_RunOnce_RetriesTransientFailures(t *testing.T) {
	settler := new(MockSettler)
	settler.On("SettlePendingRewards", mock.Anything, 10).
		Return(lifecycle.SettlementReport{Settled: 1, Failed: 1, Transient: true}, nil).Once()
	settler.On("SettlePendingRewards", mock.Anything, 10).
		Return(lifecycle.SettlementReport{Settled: 1}, nil).Once()

	job := jobs.NewRewardSettlementJob(settler, fastConfig(), discardLogger())

	require.NoError(t, job.RunOnce(t.Context()))
	settler.AssertNumberOfCalls(t, "SettlePendingRewards", 2)
}

func TestRewardSettlementJob_RunOnce_GivesUpAfterMaxRetries(t *testing.T) {
	settler := new(MockSettler)
	outage := errs.NewPersistenceFailureError("find unsettled rewards", errors.New("connection refused"))
	settler.On("SettlePendingRewards", mock.Anything, 10).
		Return(lifecycle.SettlementReport{}, outage)

	job := jobs.NewRewardSettlementJob(settler, fastConfig(), discardLogger())

	err := job.RunOnce(t.Context())
	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	settler.AssertNumberOfCalls(t, "SettlePendingRewards", 4)
}

func TestRewardSettlementJob_RunOnce_StopsOnPermanentError(t *testing.T) {
	settler := new(MockSettler)
	broken := errors.New("schema mismatch")
	settler.On("SettlePendingRewards", mock.Anything, 10).
		Return(lifecycle.SettlementReport{}, broken).Once()

	job := jobs.NewRewardSettlementJob(settler, fastConfig(), discardLogger())

	err := job.RunOnce(t.Context())
	require.ErrorIs(t, err, broken)
	settler.AssertNumberOfCalls(t, "SettlePendingRewards", 1)
}

func TestRewardSettlementJob_RunOnce_UsesDefaultBatch(t *testing.T) {
	settler := new(MockSettler)
	settler.On("SettlePendingRewards", mock.Anything, lifecycle.DefaultSettlementBatch).
		Return(lifecycle.SettlementReport{}, nil).Once()

	job := jobs.NewRewardSettlementJob(settler, jobs.SettlementJobConfig{}, discardLogger())

	require.NoError(t, job.RunOnce(t.Context()))
	settler.AssertExpectations(t)
}

func TestRewardSettlementJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewRewardSettlementJob(new(MockSettler), jobs.SettlementJobConfig{Schedule: "every tuesday"}, discardLogger())

	err := job.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every tuesday")
}

func TestRewardSettlementJob_StartStop(t *testing.T) {
	settler := new(MockSettler)
	settler.On("SettlePendingRewards", mock.Anything, mock.Anything).
		Return(lifecycle.SettlementReport{}, nil).Maybe()

	job := jobs.NewRewardSettlementJob(settler, fastConfig(), discardLogger())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	settler := new(MockSettler)
	settler.On("SettlePendingRewards", mock.Anything, mock.Anything).
		Return(lifecycle.SettlementReport{}, nil).Maybe()

	manager := jobs.NewJobManager(settler, fastConfig(), discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAllFailsOnBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(new(MockSettler), jobs.SettlementJobConfig{Schedule: "nope"}, discardLogger())

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reward settlement")
}
