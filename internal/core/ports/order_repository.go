// Package ports defines repository interfaces for the fulfillment core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored as a header row plus its owned item rows; Add writes
// both so that, inside a transaction, no header survives without its items.
type OrderRepository interface {
	// Add persists a new order aggregate: the header row and every item row.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order header (status, driver
	// assignment, payment state). Items are immutable after creation and are
	// not touched. The UPDATE acquires a row lock on the order for the rest
	// of the enclosing transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstUnassignedInPreparing retrieves the oldest order in Preparing
	// status with no driver assigned. Used by the auto-dispatch workflow.
	GetFirstUnassignedInPreparing(ctx context.Context) (*order.Order, error)

	// CountByDriverAndStatus counts orders referencing the driver in any of
	// the given statuses. Used for the busy/available recount after a release
	// or delivery, and for the tiered deletion's active-order check.
	CountByDriverAndStatus(ctx context.Context, driverID kernel.UUID, statuses ...order.Status) (int64, error)

	// CountByDriver counts every order that references the driver,
	// regardless of status. Used by the tiered deletion's history check.
	CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)

	// DetachDriverFromTerminalOrders clears the driver reference on the
	// driver's Delivered and Cancelled orders. Runs before a hard delete so
	// the order rows survive the driver's removal.
	DetachDriverFromTerminalOrders(ctx context.Context, driverID kernel.UUID) error
}
