package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Dispatch outcomes that mean "nothing to do right now" rather than a
// failure. The dispatch job treats them as a quiet tick.
var (
	// ErrNoPendingOrders is returned when no unassigned order is in Preparing status.
	ErrNoPendingOrders = errors.New("no unassigned orders in preparation")

	// ErrNoAvailableDrivers is returned when every active driver is Busy or Offline.
	ErrNoAvailableDrivers = errors.New("no available drivers")
)

// DispatchNextOrderCommandHandler performs one automatic dispatch step. It
// picks the oldest unassigned order in Preparing and the active Available
// driver idle the longest, then couples them with the same invariants the
// manual assignment path enforces: order to OnTheWay, driver to Busy, both
// in one transaction.
type DispatchNextOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDispatchNextOrderCommandHandler creates a handler for automatic dispatch.
func NewDispatchNextOrderCommandHandler(uowFactory DispatchUoWFactory) DispatchNextOrderCommandHandler {
	return DispatchNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one dispatch step. Returns ErrNoPendingOrders or
// ErrNoAvailableDrivers when either side of the match is empty; callers
// that poll treat those as a normal idle tick.
func (h *DispatchNextOrderCommandHandler) Handle(ctx context.Context, cmd DispatchNextOrderCommand) error {
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

	orderAggregate, err := uow.OrderRepository().GetFirstUnassignedInPreparing(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoPendingOrders
		}
		return err
	}

	driverAggregate, err := uow.DriverRepository().GetFirstAvailable(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoAvailableDrivers
		}
		return err
	}

	if err = orderAggregate.AssignDriver(driverAggregate.ID()); err != nil {
		return err
	}

	if err = driverAggregate.MarkBusy(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return errs.NewPersistenceError("dispatch order", err)
	}

	if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
		return errs.NewPersistenceError("dispatch order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("dispatch order", err)
	}

	return nil
}
