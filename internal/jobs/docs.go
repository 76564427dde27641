// Package jobs provides scheduled background tasks for the pizzeria backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderStatusJob - Runs every 40 seconds to advance in-flight orders through the fulfillment lifecycle
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The status job uses the cron expression "*/40 * * * * *", so it runs at
// seconds 0 and 40 of every minute. Each evaluation pass is probabilistic:
// an order may or may not advance on any given tick, which makes the
// simulated kitchen feel organic rather than metronomic.
//
// # Error Handling
//
// - Per-order update failures are counted and logged inside the handler; they never abort the pass
// - A failed pass as a whole is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
