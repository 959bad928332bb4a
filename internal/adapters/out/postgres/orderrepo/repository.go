package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// headerColumns lists the mutable order header columns. Update writes only
// these, so item rows and creation metadata are never touched.
var headerColumns = []string{
	"customer_name", "driver_id", "status",
	"subtotal", "delivery_fee", "discount", "total",
	"delivery_address", "delivery_phone", "delivery_instructions", "delivery_estimated_minutes",
	"payment_method", "payment_status",
	"updated_at",
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all of its items. GORM writes the association
// rows in the same statement batch, so inside a transaction the header and
// items land together or not at all.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order header. Select forces every header column into the
// UPDATE, including a driver_id going back to NULL on release.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(headerColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	// FOR UPDATE: inside a transaction the header row stays locked until
	// commit, so concurrent status transitions on the same order serialize
	// and the second one re-reads the committed state.
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstUnassignedInPreparing retrieves the oldest Preparing order with no
// driver, the next candidate for automatic dispatch.
func (r *GormOrderRepository) GetFirstUnassignedInPreparing(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		Where("status = ? AND driver_id IS NULL", order.Preparing).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first unassigned in preparing")
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountByDriverAndStatus counts the driver's orders in any of the given statuses.
func (r *GormOrderRepository) CountByDriverAndStatus(
	ctx context.Context, driverID kernel.UUID, statuses ...order.Status,
) (int64, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	raw := make([]int, 0, len(statuses))
	for _, status := range statuses {
		raw = append(raw, int(status))
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(), raw).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByDriver counts every order referencing the driver, in any status.
func (r *GormOrderRepository) CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id = ?", driverID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// DetachDriverFromTerminalOrders clears the driver reference on the driver's
// Delivered and Cancelled orders, ahead of a physical driver delete.
func (r *GormOrderRepository) DetachDriverFromTerminalOrders(ctx context.Context, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(),
			[]int{int(order.Delivered), int(order.Cancelled)}).
		Update("driver_id", nil).Error
}
