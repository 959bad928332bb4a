package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents registering a new delivery driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	profile         driver.Profile
	currentLocation string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver. The
// profile must carry at least a name and an email.
func NewCreateDriverCommand(profile driver.Profile, currentLocation string) (CreateDriverCommand, error) {
	if profile.Name == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}
	if profile.Email == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("email")
	}

	return CreateDriverCommand{
		profile:         profile,
		currentLocation: currentLocation,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Profile returns the new driver's profile.
func (c CreateDriverCommand) Profile() driver.Profile {
	return c.profile
}

// CurrentLocation returns the driver's starting location, possibly empty.
func (c CreateDriverCommand) CurrentLocation() string {
	return c.currentLocation
}
