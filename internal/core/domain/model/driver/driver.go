package driver

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsDeactivated is returned when mutating a soft-deleted driver.
	ErrDriverIsDeactivated = errors.New("driver is deactivated")
)

// Profile carries the mutable identification fields of a driver: contact
// details and vehicle information. Name and email are required; email
// uniqueness is enforced by the datastore.
type Profile struct {
	Name         string
	Email        string
	Phone        string
	VehicleType  string
	VehiclePlate string
}

// Driver is the aggregate root for a delivery driver: identity and vehicle
// profile, dispatch status, delivery statistics, and the soft-delete marker.
//
// The status is coupled to order state: a Busy driver must have at least one
// order OnTheWay referencing them. The Dispatch Engine preserves that
// invariant by mutating driver and order inside one transaction.
//
// A driver with order history is never physically removed; deletion flags the
// driver inactive instead (tiered deletion).
type Driver struct {
	id              kernel.UUID
	profile         Profile
	status          Status
	currentLocation string

	totalDeliveries     int
	averageRating       float64
	averageDeliveryTime float64

	lastActiveAt time.Time
	active       bool

	guard guard.ConstructorGuard
}

// NewDriver creates a new active driver in Available status.
// The profile must carry a non-empty name and email.
func NewDriver(id kernel.UUID, profile Profile, currentLocation string) (*Driver, error) {
	d := &Driver{
		status:          Available,
		currentLocation: currentLocation,
		lastActiveAt:    time.Now().UTC(),
		active:          true,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its dispatch status, statistics, and soft-delete marker.
func RestoreDriver(
	id kernel.UUID,
	profile Profile,
	status Status,
	currentLocation string,
	totalDeliveries int,
	averageRating float64,
	averageDeliveryTime float64,
	lastActiveAt time.Time,
	active bool,
) (*Driver, error) {
	d, err := NewDriver(id, profile, currentLocation)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("total deliveries")
	}

	d.status = status
	d.totalDeliveries = totalDeliveries
	d.averageRating = averageRating
	d.averageDeliveryTime = averageDeliveryTime
	d.lastActiveAt = lastActiveAt
	d.active = active
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Profile returns the driver's contact and vehicle details.
func (d *Driver) Profile() Profile {
	return d.profile
}

// Status returns the driver's dispatch status.
func (d *Driver) Status() Status {
	return d.status
}

// CurrentLocation returns the driver's free-text location.
func (d *Driver) CurrentLocation() string {
	return d.currentLocation
}

// TotalDeliveries returns the completed delivery counter.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// AverageRating returns the driver's average customer rating.
func (d *Driver) AverageRating() float64 {
	return d.averageRating
}

// AverageDeliveryTime returns the driver's average delivery time in minutes.
func (d *Driver) AverageDeliveryTime() float64 {
	return d.averageDeliveryTime
}

// LastActiveAt returns the time of the driver's last dispatch activity.
func (d *Driver) LastActiveAt() time.Time {
	return d.lastActiveAt
}

// IsActive reports whether the driver has not been soft-deleted.
func (d *Driver) IsActive() bool {
	return d.active
}

// MarkBusy transitions the driver to Busy as part of a dispatch.
// The driver must be active and Available; the caller couples this with the
// order's move to OnTheWay in the same transaction.
func (d *Driver) MarkBusy(now time.Time) error {
	if !d.active {
		return ErrDriverIsDeactivated
	}
	if d.status != Available {
		return errs.NewPreconditionFailedError("driver", d.id.String(), d.status.String())
	}

	d.status = Busy
	d.lastActiveAt = now
	return nil
}

// MarkAvailable returns the driver to Available, after their last OnTheWay
// order was released or delivered, or when coming back on shift.
func (d *Driver) MarkAvailable(now time.Time) error {
	if !d.active {
		return ErrDriverIsDeactivated
	}

	d.status = Available
	d.lastActiveAt = now
	return nil
}

// MarkOffline takes the driver off shift. A Busy driver cannot go offline;
// their in-flight orders must be released or delivered first.
func (d *Driver) MarkOffline() error {
	if d.status == Busy {
		return errs.NewPreconditionFailedError("driver", d.id.String(), d.status.String())
	}

	d.status = Offline
	return nil
}

// RecordDelivery increments the completed-delivery counter and refreshes
// the activity timestamp. Called when one of the driver's orders is delivered.
func (d *Driver) RecordDelivery(now time.Time) {
	d.totalDeliveries++
	d.lastActiveAt = now
}

// Deactivate soft-deletes the driver, preserving the row for order history.
// A Busy driver cannot be deactivated.
func (d *Driver) Deactivate() error {
	if d.status == Busy {
		return errs.NewPreconditionFailedError("driver", d.id.String(), d.status.String())
	}

	d.active = false
	d.status = Offline
	return nil
}

// UpdateProfile replaces the driver's contact and vehicle details and,
// when non-empty, the free-text location. Deactivated drivers are read-only.
func (d *Driver) UpdateProfile(profile Profile, currentLocation string) error {
	if !d.active {
		return ErrDriverIsDeactivated
	}
	if err := d.setProfile(profile); err != nil {
		return err
	}
	if currentLocation != "" {
		d.currentLocation = currentLocation
	}
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setProfile(profile Profile) error {
	if profile.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if profile.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	d.profile = profile
	return nil
}
