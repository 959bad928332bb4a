package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// StartPreparingCommandHandler moves an order from Received to Preparing,
// which is the status the dispatch workflow picks orders from.
type StartPreparingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPreparingCommandHandler creates a handler for kitchen acceptance.
func NewStartPreparingCommandHandler(uowFactory OrderUoWFactory) StartPreparingCommandHandler {
	return StartPreparingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Only an order in Received status can start
// preparation; anything else yields a precondition error.
func (h *StartPreparingCommandHandler) Handle(ctx context.Context, cmd StartPreparingCommand) error {
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

	if err = orderAggregate.StartPreparing(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return errs.NewPersistenceError("start preparing", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("start preparing", err)
	}

	return nil
}
