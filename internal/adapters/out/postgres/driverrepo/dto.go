// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. Soft-deleted drivers keep their row with active=false
// so historical orders retain a valid reference.
package driverrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	VehicleType  string
	VehiclePlate string

	Status          int `gorm:"index"`
	CurrentLocation string

	TotalDeliveries     int
	AverageRating       float64
	AverageDeliveryTime float64

	LastActiveAt time.Time `gorm:"index"`
	Active       bool      `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Profile().Name,
		Email:               aggregate.Profile().Email,
		Phone:               aggregate.Profile().Phone,
		VehicleType:         aggregate.Profile().VehicleType,
		VehiclePlate:        aggregate.Profile().VehiclePlate,
		Status:              int(aggregate.Status()),
		CurrentLocation:     aggregate.CurrentLocation(),
		TotalDeliveries:     aggregate.TotalDeliveries(),
		AverageRating:       aggregate.AverageRating(),
		AverageDeliveryTime: aggregate.AverageDeliveryTime(),
		LastActiveAt:        aggregate.LastActiveAt(),
		Active:              aggregate.IsActive(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		driver.Profile{
			Name:         dto.Name,
			Email:        dto.Email,
			Phone:        dto.Phone,
			VehicleType:  dto.VehicleType,
			VehiclePlate: dto.VehiclePlate,
		},
		driver.Status(dto.Status),
		dto.CurrentLocation,
		dto.TotalDeliveries,
		dto.AverageRating,
		dto.AverageDeliveryTime,
		dto.LastActiveAt,
		dto.Active,
	)
}
