package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/pkg/errs"
)

// UpdateDriverCommandHandler edits a driver's profile and location.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver profile updates.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated driver.
// Deactivated drivers cannot be edited.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverAggregate, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = driverAggregate.UpdateProfile(cmd.Profile(), cmd.CurrentLocation()); err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
		return nil, errs.NewPersistenceError("update driver", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("update driver", err)
	}

	return driverAggregate, nil
}
