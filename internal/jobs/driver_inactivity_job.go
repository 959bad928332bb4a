package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverInactivityJob manages the scheduled sweep of stale available drivers.
// Runs every minute and marks offline the drivers whose last activity is
// older than the configured idle window.
type DriverInactivityJob struct {
	handler   commands.MarkIdleDriversOfflineCommandHandler
	idleAfter time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDriverInactivityJob creates a new job for sweeping idle drivers.
func NewDriverInactivityJob(
	handler commands.MarkIdleDriversOfflineCommandHandler,
	idleAfter time.Duration,
	logger *slog.Logger,
) *DriverInactivityJob {
	return &DriverInactivityJob{
		handler:   handler,
		idleAfter: idleAfter,
		cron:      cron.New(),
		logger:    logger.With("component", "driver_inactivity_job"),
	}
}

// Start begins the driver inactivity job to run every minute.
func (j *DriverInactivityJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkIdleDriversOfflineCommand(j.idleAfter)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Driver inactivity job failed to build command", "error", cmdErr)
			return
		}

		marked, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver inactivity job failed", "error", err)
			return
		}

		if marked > 0 {
			j.logger.InfoContext(ctx, "Marked idle drivers offline", "count", marked)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver inactivity job started (running every minute)")
	return nil
}

// Stop stops the driver inactivity job.
func (j *DriverInactivityJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver inactivity job stopped")
}
