// Package customer contains the minimal customer record the ordering core
// needs: an identity to hang orders on and the contact fields that checkout
// may backfill. Account management itself lives outside the core.
package customer

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the ordering identity referenced by order headers.
// Name and phone may start empty (guest checkout) and get backfilled
// from later orders without ever overwriting existing values.
type Customer struct {
	id    kernel.UUID
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record. Name and phone are optional;
// at least one must be present so the record is resolvable.
func NewCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" && phone == "" {
		return nil, errs.NewValueIsRequiredError("customer name or phone")
	}

	return &Customer{
		id:    id,
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer record from persistence.
func RestoreCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	return NewCustomer(id, name, phone)
}

// Validate ensures the Customer was created through a factory method.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name, possibly empty.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// BackfillContact fills in missing name or phone from a new order without
// overwriting existing values. Returns true when anything changed, so the
// caller knows whether the record needs an update.
func (c *Customer) BackfillContact(name, phone string) bool {
	changed := false
	if c.name == "" && name != "" {
		c.name = name
		changed = true
	}
	if c.phone == "" && phone != "" {
		c.phone = phone
		changed = true
	}
	return changed
}
