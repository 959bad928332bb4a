package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer record (staff-entered orders create
	// customers on the fly).
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer, typically the
	// contact backfill performed during order creation.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByPhone retrieves a customer by phone number, the lookup key the
	// staff-entry path uses before creating a new record.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
