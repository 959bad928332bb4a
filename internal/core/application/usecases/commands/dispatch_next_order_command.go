package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrDispatchNextOrderCommandIsNotConstructed = errors.New(
	"DispatchNextOrderCommand must be created via NewDispatchNextOrderCommand constructor",
)

// DispatchNextOrderCommand represents one automatic dispatch step: couple
// the oldest unassigned Preparing order with the longest-idle Available
// driver. Carries no parameters; both sides are selected inside the handler.
type DispatchNextOrderCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewDispatchNextOrderCommand creates a command for one dispatch step.
func NewDispatchNextOrderCommand() (DispatchNextOrderCommand, error) {
	return DispatchNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNextOrderCommandIsNotConstructed)
}
