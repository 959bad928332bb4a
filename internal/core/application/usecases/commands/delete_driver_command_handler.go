package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// DeleteDriverCommandHandler applies the tiered deletion policy:
//
//  1. A driver with orders still in flight cannot be deleted at all.
//  2. A driver with any order history is deactivated, keeping the row so
//     past orders retain a valid reference.
//  3. A driver with no history is detached from any leftover terminal
//     references and physically removed.
//
// The decision and the write it leads to share one transaction, so a
// dispatch racing the deletion either sees the driver or does not; it never
// sees a half-deleted one.
type DeleteDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver deletion.
func NewDeleteDriverCommandHandler(uowFactory DispatchUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverAggregate, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	inFlight, err := uow.OrderRepository().CountByDriverAndStatus(ctx, cmd.DriverID(),
		order.Preparing, order.OnTheWay)
	if err != nil {
		return err
	}
	if inFlight > 0 {
		return errs.NewActiveOrdersExistError(
			cmd.DriverID().String(), inFlight, driverAggregate.Status().String())
	}

	history, err := uow.OrderRepository().CountByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if history > 0 || driverAggregate.TotalDeliveries() > 0 {
		if err = driverAggregate.Deactivate(); err != nil {
			return errs.NewCannotPreserveHistoryError(cmd.DriverID().String(), err)
		}
		if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
			return errs.NewPersistenceError("deactivate driver", err)
		}
	} else {
		if err = uow.OrderRepository().DetachDriverFromTerminalOrders(ctx, cmd.DriverID()); err != nil {
			return errs.NewPersistenceError("delete driver", err)
		}
		if err = uow.DriverRepository().Remove(ctx, cmd.DriverID()); err != nil {
			return errs.NewPersistenceError("delete driver", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("delete driver", err)
	}

	return nil
}
