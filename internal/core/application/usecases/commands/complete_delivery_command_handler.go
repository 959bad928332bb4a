package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler marks an order delivered and updates the
// driver's statistics. The delivered order keeps its driver reference for
// history; the driver's delivery counter goes up and, when nothing else is
// on the way, the driver returns to Available. One transaction covers both.
type CompleteDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DispatchUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. The order must be OnTheWay with a
// driver assigned. The order row is updated before the recount so the
// just-delivered order is out of the driver's OnTheWay tally.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if orderAggregate.Driver() == nil {
		return order.ErrNoDriverAssigned
	}
	driverID := *orderAggregate.Driver()

	if err = orderAggregate.Deliver(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return errs.NewPersistenceError("complete delivery", err)
	}

	driverAggregate, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	driverAggregate.RecordDelivery(now)

	remaining, err := uow.OrderRepository().CountByDriverAndStatus(ctx, driverID, order.OnTheWay)
	if err != nil {
		return err
	}

	if remaining == 0 {
		if err = driverAggregate.MarkAvailable(now); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
		return errs.NewPersistenceError("complete delivery", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("complete delivery", err)
	}

	return nil
}
