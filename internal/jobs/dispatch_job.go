package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchJob manages the scheduled pairing of prepared orders with drivers.
// Runs every five seconds to match the oldest unassigned order in preparation
// with the longest-idle available driver.
type DispatchJob struct {
	handler commands.DispatchNextOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a new job for dispatching orders to drivers.
func NewDispatchJob(handler commands.DispatchNextOrderCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every five seconds.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchNextOrderCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Dispatch job failed to build command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoAvailableDrivers) {
				j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
