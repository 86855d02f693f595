package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the background jobs as a group.
type JobManager struct {
	jobs   []namedJob
	logger *slog.Logger
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager wires the reward settlement job.
func NewJobManager(settler RewardSettler, cfg SettlementJobConfig, logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "reward settlement", job: NewRewardSettlementJob(settler, cfg, logger)},
		},
		logger: logger,
	}
}

// StartAll starts every job. If one fails, the ones already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}
	jm.logger.Info("Background jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops the jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
