package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReleaseDriverCommandHandler handles taking an order back from its driver.
// The order returns to Preparing with its driver reference cleared, and the
// driver is recounted: only when no other order still has them on the way do
// they flip back to Available. Both updates share one transaction.
type ReleaseDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewReleaseDriverCommandHandler creates a handler for driver release operations.
func NewReleaseDriverCommandHandler(uowFactory DispatchUoWFactory) ReleaseDriverCommandHandler {
	return ReleaseDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command. The order is updated before the
// recount so the released order itself no longer appears in the driver's
// OnTheWay tally.
func (h *ReleaseDriverCommandHandler) Handle(ctx context.Context, cmd ReleaseDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	releasedDriverID, err := orderAggregate.ReleaseDriver()
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return errs.NewPersistenceError("release driver", err)
	}

	remaining, err := uow.OrderRepository().CountByDriverAndStatus(ctx, releasedDriverID, order.OnTheWay)
	if err != nil {
		return err
	}

	if remaining == 0 {
		driverAggregate, getErr := uow.DriverRepository().Get(ctx, releasedDriverID)
		if getErr != nil {
			return getErr
		}

		if err = driverAggregate.MarkAvailable(time.Now().UTC()); err != nil {
			return err
		}

		if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
			return errs.NewPersistenceError("release driver", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("release driver", err)
	}

	return nil
}
