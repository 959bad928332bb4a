package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents editing a driver's profile or location.
// Dispatch status and statistics are not editable this way; those change
// only through the fulfillment workflows.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	profile         driver.Profile
	currentLocation string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update a driver's profile.
// An empty currentLocation keeps the stored location.
func NewUpdateDriverCommand(
	driverID kernel.UUID, profile driver.Profile, currentLocation string,
) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}
	if profile.Name == "" {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}
	if profile.Email == "" {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("email")
	}

	return UpdateDriverCommand{
		driverID:        driverID,
		profile:         profile,
		currentLocation: currentLocation,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the driver to update.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Profile returns the replacement profile.
func (c UpdateDriverCommand) Profile() driver.Profile {
	return c.profile
}

// CurrentLocation returns the new location, or empty to keep the stored one.
func (c UpdateDriverCommand) CurrentLocation() string {
	return c.currentLocation
}
