package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a not-yet-delivered order. An order
// already on the way first gives its driver back, with the same recount the
// release path does, so cancellation never strands a driver in Busy.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory DispatchUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Delivered and already-cancelled
// orders yield a precondition error; everything else moves to Cancelled, and
// an assigned driver is released inside the same transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = orderAggregate.Cancel(); err != nil {
		return err
	}

	releasedDriverID := orderAggregate.Driver()

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return errs.NewPersistenceError("cancel order", err)
	}

	if releasedDriverID != nil {
		if err = h.freeDriver(ctx, uow, *releasedDriverID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("cancel order", err)
	}

	return nil
}

func (h *CancelOrderCommandHandler) freeDriver(
	ctx context.Context, uow DispatchUoW, driverID kernel.UUID,
) error {
	remaining, err := uow.OrderRepository().CountByDriverAndStatus(ctx, driverID, order.OnTheWay)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}

	driverAggregate, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return err
	}

	if err = driverAggregate.MarkAvailable(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
		return errs.NewPersistenceError("cancel order", err)
	}

	return nil
}
