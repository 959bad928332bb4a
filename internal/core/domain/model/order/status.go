package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the kitchen-to-door workflow.
//
// State transitions:
//
//	Received ──> Preparing ──> OnTheWay ──> Delivered
//	                 ^             │
//	                 └─────────────┘
//	          (driver release returns the order to Preparing)
//
// Cancelled is reachable from any non-terminal state. Delivered and Cancelled
// are terminal. Preparing -> OnTheWay never happens without a driver
// assignment, and OnTheWay -> Preparing only as a side effect of releasing
// the assigned driver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order is first created.
	Received

	// Preparing indicates the kitchen has accepted the order.
	// Orders in this status are eligible for driver assignment.
	Preparing

	// OnTheWay indicates a driver has picked up the order.
	// An order in this status always references its driver.
	OnTheWay

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Received:  "Received",
		Preparing: "Preparing",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "Received",
		Preparing: "Preparing",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
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

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanAssignDriver reports whether the status allows coupling the order to a driver.
// Only Preparing orders are dispatchable.
func (s Status) CanAssignDriver() bool {
	return s == Preparing
}

// CanCancel reports whether the status allows administrative cancellation.
// Every non-terminal status can be cancelled.
func (s Status) CanCancel() bool {
	return !s.IsTerminal()
}

// ValidateDriverBinding validates the consistency between order status and
// driver assignment. OnTheWay orders must reference a driver; Received and
// Preparing orders must not. Terminal orders may keep their historical driver
// reference or have it cleared.
//
// Parameters:
//   - assigned: whether the order has a driver assigned
func (s Status) ValidateDriverBinding(assigned bool) error {
	if assigned && (s == Received || s == Preparing) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !assigned && s == OnTheWay {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
