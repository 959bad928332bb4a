// Package queries contains read operations for the fulfillment core.
// Query handlers bypass the domain model and read projections straight from
// the database, keeping the read side cheap and the aggregates out of the
// hot path.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order still moving through the
// pipeline: Received, Preparing, and OnTheWay. Delivered and Cancelled
// orders are excluded.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order board.
// This is a parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row on the active order board.
// DriverID is nil while the order is unassigned.
type GetActiveOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	DriverID     *kernel.UUID
	Total        float64
	Address      string
	CreatedAt    time.Time
}
