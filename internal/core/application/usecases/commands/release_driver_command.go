package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseDriverCommandIsNotConstructed = errors.New(
	"ReleaseDriverCommand must be created via NewReleaseDriverCommand constructor",
)

// ReleaseDriverCommand represents taking an order back from its driver,
// typically because the driver was dispatched by mistake or became
// unavailable mid-delivery.
type ReleaseDriverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseDriverCommand creates a command to release the driver from an order.
func NewReleaseDriverCommand(orderID kernel.UUID) (ReleaseDriverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseDriverCommand{}, err
	}

	return ReleaseDriverCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseDriverCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDriverCommandIsNotConstructed)
}

// OrderID returns the order to release the driver from.
func (c ReleaseDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}
