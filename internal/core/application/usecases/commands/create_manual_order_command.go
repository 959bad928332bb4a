package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateManualOrderCommandIsNotConstructed = errors.New(
	"CreateManualOrderCommand must be created via NewCreateManualOrderCommand constructor",
)

// placeholderAddress stands in for the destination on phone and walk-in
// orders taken without one. Staff fill in the real address before dispatch.
const placeholderAddress = "N/A"

// CreateManualOrderCommand represents a staff-entered order: phone or
// walk-in. The customer is identified by phone number rather than an
// account, and a missing destination address is tolerated.
type CreateManualOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerPhone string
	items         []*order.Item
	deliveryFee   float64
	discount      float64
	delivery      order.DeliveryDetails
	payment       order.PaymentDetails

	guard guard.ConstructorGuard
}

// NewCreateManualOrderCommand creates a command for a staff-entered order.
// The phone number is required since it is the customer lookup key; an
// empty delivery address is replaced with a placeholder.
func NewCreateManualOrderCommand(
	customerName string,
	customerPhone string,
	items []ItemInput,
	deliveryFee float64,
	discount float64,
	delivery order.DeliveryDetails,
	payment order.PaymentDetails,
) (CreateManualOrderCommand, error) {
	if customerPhone == "" {
		return CreateManualOrderCommand{}, errs.NewValueIsRequiredError("customer phone")
	}
	if customerName == "" {
		return CreateManualOrderCommand{}, errs.NewValueIsRequiredError("customer name")
	}

	domainItems, err := buildItems(items)
	if err != nil {
		return CreateManualOrderCommand{}, err
	}

	if deliveryFee < 0 {
		return CreateManualOrderCommand{}, errs.NewValueIsInvalidError("delivery fee")
	}
	if discount < 0 {
		return CreateManualOrderCommand{}, errs.NewValueIsInvalidError("discount")
	}
	if payment.Method == "" {
		return CreateManualOrderCommand{}, errs.NewValueIsRequiredError("payment method")
	}

	if delivery.Address == "" {
		delivery.Address = placeholderAddress
	}
	if delivery.Phone == "" {
		delivery.Phone = customerPhone
	}

	return CreateManualOrderCommand{
		customerName:  customerName,
		customerPhone: customerPhone,
		items:         domainItems,
		deliveryFee:   deliveryFee,
		discount:      discount,
		delivery:      delivery,
		payment:       payment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManualOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualOrderCommandIsNotConstructed)
}

// CustomerName returns the name the staff member entered.
func (c CreateManualOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the phone number used to look up the customer.
func (c CreateManualOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Items returns the validated order lines.
func (c CreateManualOrderCommand) Items() []*order.Item {
	return c.items
}

// DeliveryFee returns the delivery charge.
func (c CreateManualOrderCommand) DeliveryFee() float64 {
	return c.deliveryFee
}

// Discount returns the discount applied to the order.
func (c CreateManualOrderCommand) Discount() float64 {
	return c.discount
}

// Delivery returns the destination details, with the placeholder address
// substituted when none was taken.
func (c CreateManualOrderCommand) Delivery() order.DeliveryDetails {
	return c.delivery
}

// Payment returns the payment details.
func (c CreateManualOrderCommand) Payment() order.PaymentDetails {
	return c.payment
}
