package commands

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"
)

// MarkIdleDriversOfflineCommandHandler sweeps Available drivers that have
// been idle past the window and flips them Offline. Busy drivers are never
// touched; they come back through the release and delivery paths.
type MarkIdleDriversOfflineCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewMarkIdleDriversOfflineCommandHandler creates a handler for the inactivity sweep.
func NewMarkIdleDriversOfflineCommandHandler(uowFactory DriverUoWFactory) MarkIdleDriversOfflineCommandHandler {
	return MarkIdleDriversOfflineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one sweep and returns how many drivers went Offline.
func (h *MarkIdleDriversOfflineCommandHandler) Handle(
	ctx context.Context, cmd MarkIdleDriversOfflineCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	available, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.IdleAfter())
	marked := 0

	for _, driverAggregate := range available {
		if !driverAggregate.LastActiveAt().Before(cutoff) {
			continue
		}

		if err = driverAggregate.MarkOffline(); err != nil {
			return 0, err
		}

		if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
			return 0, errs.NewPersistenceError("mark idle drivers offline", err)
		}

		marked++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewPersistenceError("mark idle drivers offline", err)
	}

	return marked, nil
}
