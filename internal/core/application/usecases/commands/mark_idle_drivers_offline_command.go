package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkIdleDriversOfflineCommandIsNotConstructed = errors.New(
	"MarkIdleDriversOfflineCommand must be created via NewMarkIdleDriversOfflineCommand constructor",
)

// MarkIdleDriversOfflineCommand represents one sweep of the inactivity
// policy: Available drivers whose last activity is older than the idle
// window go Offline and stop receiving dispatches.
type MarkIdleDriversOfflineCommand struct { //nolint:recvcheck //using for validation
	idleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewMarkIdleDriversOfflineCommand creates a command for one inactivity
// sweep. idleAfter is how long a driver may sit Available without activity.
func NewMarkIdleDriversOfflineCommand(idleAfter time.Duration) (MarkIdleDriversOfflineCommand, error) {
	if idleAfter <= 0 {
		return MarkIdleDriversOfflineCommand{}, errs.NewValueIsInvalidErrorWithCause("idleAfter",
			fmt.Errorf("%s is not positive", idleAfter))
	}

	return MarkIdleDriversOfflineCommand{
		idleAfter: idleAfter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkIdleDriversOfflineCommand) Validate() error {
	return c.guard.Validate(ErrMarkIdleDriversOfflineCommandIsNotConstructed)
}

// IdleAfter returns the idle window.
func (c MarkIdleDriversOfflineCommand) IdleAfter() time.Duration {
	return c.idleAfter
}
