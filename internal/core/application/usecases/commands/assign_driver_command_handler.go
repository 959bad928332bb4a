package commands

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"
)

// AssignDriverCommandHandler handles manual driver assignment. Both sides of
// the coupling change together in one transaction: the order moves to
// OnTheWay with the driver reference set, and the driver moves to Busy. A
// failure on either side rolls back both, so an order can never point at a
// driver who was not marked Busy.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for manual driver assignment.
func NewAssignDriverCommandHandler(uowFactory DispatchUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. The order must be in Preparing
// status and the driver must be active and Available; otherwise a
// precondition error identifies the side that blocked the assignment.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	driverAggregate, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = orderAggregate.AssignDriver(driverAggregate.ID()); err != nil {
		return err
	}

	if err = driverAggregate.MarkBusy(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return errs.NewPersistenceError("assign driver", err)
	}

	if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
		return errs.NewPersistenceError("assign driver", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("assign driver", err)
	}

	return nil
}
