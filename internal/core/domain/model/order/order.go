package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoDriverAssigned is returned when releasing a driver from an order
	// that has none assigned.
	ErrNoDriverAssigned = errors.New("order has no driver assigned")
)

// DeliveryDetails carries the destination information for an order.
// Manual (counter/phone) orders use a placeholder address instead of
// a street address.
type DeliveryDetails struct {
	Address          string
	Phone            string
	Instructions     string
	EstimatedMinutes int
}

// PaymentDetails carries how the order is paid and the current payment state.
// Payment processing itself is an external concern; the order only records it.
type PaymentDetails struct {
	Method string
	Status string
}

// Order is the aggregate root for one customer order: the header with its
// pricing, delivery and payment details, the owned line items, and the
// lifecycle status coupled to driver assignment.
//
// Order maintains these invariants:
//   - at least one item, each with totalPrice = quantity × unitPrice
//   - total = subtotal + deliveryFee − discount, where subtotal is the sum
//     of the item line totals
//   - status OnTheWay if and only if a driver is assigned (terminal states
//     may keep or drop their historical driver reference)
//   - status transitions follow the state machine defined on Status
//
// Orders are never hard-deleted; cancellation is a status transition.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string
	driverID     *kernel.UUID
	status       Status
	items        []*Item

	subtotal    float64
	deliveryFee float64
	discount    float64
	total       float64

	delivery DeliveryDetails
	payment  PaymentDetails

	isConstructed bool
}

// NewOrder creates a new Order in Received status with no driver assigned.
// The item list must be non-empty and every item valid; the subtotal and total
// are computed from the items, never accepted from the caller. The delivery
// address and payment method are required, the charges must be non-negative
// and the resulting total positive.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	items []*Item,
	deliveryFee float64,
	discount float64,
	delivery DeliveryDetails,
	payment PaymentDetails,
) (*Order, error) {
	o := &Order{
		status:        Received,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setItems(items),
		o.setCharges(deliveryFee, discount),
		o.setDelivery(delivery),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	if err := o.computeTotals(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence, including its
// status and driver assignment. The status must be valid and consistent with
// the driver reference; the totals are recomputed from the restored items.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	items []*Item,
	deliveryFee float64,
	discount float64,
	delivery DeliveryDetails,
	payment PaymentDetails,
	status Status,
	driverID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, customerID, customerName, items, deliveryFee, discount, delivery, payment)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateDriverBinding(driverID != nil); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.driverID = driverID
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer name snapshot on the order header.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Driver returns the assigned driver's ID, or nil when unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Subtotal returns the sum of the item line totals.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// DeliveryFee returns the delivery charge.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() float64 {
	return o.discount
}

// Total returns subtotal + deliveryFee − discount.
func (o *Order) Total() float64 {
	return o.total
}

// Delivery returns the destination details.
func (o *Order) Delivery() DeliveryDetails {
	return o.delivery
}

// Payment returns the payment details.
func (o *Order) Payment() PaymentDetails {
	return o.payment
}

// StartPreparing moves the order from Received to Preparing,
// making it eligible for driver assignment.
func (o *Order) StartPreparing() error {
	if o.status != Received {
		return errs.NewPreconditionFailedError("order", o.id.String(), o.status.String())
	}

	o.status = Preparing
	return nil
}

// AssignDriver couples the order to a driver and moves it to OnTheWay.
// The order must be in Preparing status; the caller is responsible for
// transitioning the driver to busy in the same transaction.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if !o.status.CanAssignDriver() {
		return errs.NewPreconditionFailedError("order", o.id.String(), o.status.String())
	}

	o.status = OnTheWay
	o.driverID = &driverID
	return nil
}

// ReleaseDriver unassigns the driver and returns the order to Preparing.
// Returns the released driver's ID so the caller can recount that driver's
// remaining deliveries inside the same transaction. Fails with
// ErrNoDriverAssigned when no driver is set and with a precondition error
// when the order reached a terminal state; cancelled orders keep their
// driver reference for history and cannot be resurrected this way.
func (o *Order) ReleaseDriver() (kernel.UUID, error) {
	if o.status.IsTerminal() {
		return kernel.UUID{}, errs.NewPreconditionFailedError("order", o.id.String(), o.status.String())
	}
	if o.driverID == nil {
		return kernel.UUID{}, ErrNoDriverAssigned
	}

	released := *o.driverID
	o.driverID = nil
	o.status = Preparing
	return released, nil
}

// Deliver marks the order as delivered. The order must be OnTheWay.
// The driver reference is kept for history.
func (o *Order) Deliver() error {
	if o.status != OnTheWay {
		return errs.NewPreconditionFailedError("order", o.id.String(), o.status.String())
	}

	o.status = Delivered
	return nil
}

// Cancel marks the order as cancelled. Any non-terminal order can be
// cancelled; a driver still assigned must be released by the caller first.
func (o *Order) Cancel() error {
	if !o.status.CanCancel() {
		return errs.NewPreconditionFailedError("order", o.id.String(), o.status.String())
	}

	o.status = Cancelled
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerID = customerID
	o.customerName = customerName
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setCharges(deliveryFee, discount float64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%.2f is negative", deliveryFee))
	}
	if discount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%.2f is negative", discount))
	}
	o.deliveryFee = deliveryFee
	o.discount = discount
	return nil
}

func (o *Order) setDelivery(delivery DeliveryDetails) error {
	if delivery.Address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if delivery.EstimatedMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated delivery time",
			fmt.Errorf("%d minutes is negative", delivery.EstimatedMinutes))
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setPayment(payment PaymentDetails) error {
	if payment.Method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.payment = payment
	return nil
}

func (o *Order) computeTotals() error {
	var subtotal float64
	for _, item := range o.items {
		subtotal += item.TotalPrice()
	}

	total := subtotal + o.deliveryFee - o.discount
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%.2f is not greater than 0", total))
	}

	o.subtotal = subtotal
	o.total = total
	return nil
}
