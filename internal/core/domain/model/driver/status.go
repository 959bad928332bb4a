package driver

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents a driver's availability for dispatch.
//
// Available drivers can be assigned orders; Busy drivers carry at least one
// order on the way; Offline drivers are off shift and invisible to dispatch.
// Busy is entered and left only together with order transitions, inside the
// same transaction: a busy driver always has at least one OnTheWay order
// referencing them, and vice versa.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the driver can take a delivery.
	Available

	// Busy means the driver has at least one order on the way.
	Busy

	// Offline means the driver is off shift.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Busy:      "Busy",
		Offline:   "Offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Busy:      "Busy",
		Offline:   "Offline",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
