package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the active order board from the database.
// Oldest orders come first so the kitchen works the queue in arrival order.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every non-terminal order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			driver_id,
			total,
			delivery_address,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			customerName string
			status       int
			driverID     uuid.NullUUID
			total        float64
			address      string
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &customerName, &status, &driverID, &total, &address, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetActiveOrdersQueryResponse{
			ID:           orderID,
			CustomerName: customerName,
			Status:       order.Status(status).String(),
			Total:        total,
			Address:      address,
			CreatedAt:    createdAt,
		}

		if driverID.Valid {
			dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if dErr != nil {
				return nil, dErr
			}
			resp.DriverID = &dID
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
