package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CreateDriverCommandHandler registers a new driver in Available status,
// immediately eligible for dispatch.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the created driver.
// Email uniqueness is enforced by the datastore; a collision surfaces as a
// persistence error.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newDriver, err := driver.NewDriver(kernel.NewUUID(), cmd.Profile(), cmd.CurrentLocation())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return nil, errs.NewPersistenceError("create driver", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("create driver", err)
	}

	return newDriver, nil
}
