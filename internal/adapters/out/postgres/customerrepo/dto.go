// Package customerrepo provides data transfer objects and mapping functions
// for the customer records orders reference.
package customerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer records.
// Phone is indexed because the staff-entry path looks customers up by it.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Phone string `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone)
}
