// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch and driver upkeep.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every five seconds to pair unassigned prepared orders with available drivers
// 2. DriverInactivityJob - Runs every minute to mark long-idle available drivers offline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, markIdleHandler, idleAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no pending orders, no available drivers)
// - Driver inactivity job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
