// Package jobs runs the scheduled background work of the service.
//
// The only job today is RewardSettlementJob. Completing a delivery writes
// pending rewards in the same transaction and tries to settle them right after
// commit; whatever that attempt leaves behind is picked up here.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(orchestrator, jobs.SettlementJobConfig{
//		Schedule:  "*/30 * * * * *",
//		BatchSize: 100,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error handling
//
// A run retries with exponential backoff while the outbox read fails with a
// persistence failure or a batch reports transient failures. Other errors stop
// the run at once. Rewards never leave the outbox until settled, so a failed run
// loses nothing.
package jobs
