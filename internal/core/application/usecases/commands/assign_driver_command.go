package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a manual dispatch decision: couple a
// specific driver to a specific order.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
// Both identifiers must be valid UUIDs.
func NewAssignDriverCommand(orderID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
