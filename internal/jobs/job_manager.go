package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob         *DispatchJob
	driverInactivityJob *DriverInactivityJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchNextOrderCommandHandler,
	markIdleHandler commands.MarkIdleDriversOfflineCommandHandler,
	idleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob:         NewDispatchJob(dispatchHandler, logger),
		driverInactivityJob: NewDriverInactivityJob(markIdleHandler, idleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if err := jm.driverInactivityJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start driver inactivity job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverInactivityJob.Stop()
	jm.dispatchJob.Stop()
}
