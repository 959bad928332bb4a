package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler reads the available driver pool from the
// database. Longest-idle drivers come first, matching the order in which
// auto-dispatch would pick them.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available driver queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query. Soft-deleted drivers are never listed.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			current_location,
			total_deliveries,
			last_active_at
		FROM drivers
		WHERE status = ? AND active
		ORDER BY last_active_at
	`, driver.Available).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			name            string
			phone           string
			vehicleType     string
			currentLocation string
			totalDeliveries int
			lastActiveAt    time.Time
		)

		if err = rows.Scan(&id, &name, &phone, &vehicleType,
			&currentLocation, &totalDeliveries, &lastActiveAt); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		drivers = append(drivers, GetAvailableDriversQueryResponse{
			ID:              driverID,
			Name:            name,
			Phone:           phone,
			VehicleType:     vehicleType,
			CurrentLocation: currentLocation,
			TotalDeliveries: totalDeliveries,
			LastActiveAt:    lastActiveAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
