package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents removing a driver from the fleet.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a command to delete a driver.
func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}

	return DeleteDriverCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the driver to delete.
func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
