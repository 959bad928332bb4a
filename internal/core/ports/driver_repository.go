package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate.
	// The driver must be valid and the email unique.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver (status, statistics,
	// profile, soft-delete marker). The UPDATE acquires a row lock on the
	// driver for the rest of the enclosing transaction.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier,
	// including soft-deleted drivers.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetFirstAvailable retrieves the active Available driver that has been
	// idle the longest. Used by the auto-dispatch workflow.
	GetFirstAvailable(ctx context.Context) (*driver.Driver, error)

	// GetAllAvailable retrieves all active drivers in Available status.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// Remove physically deletes the driver row. Only the tiered deletion
	// policy calls this, and only for drivers with zero order history.
	Remove(ctx context.Context, id kernel.UUID) error
}
