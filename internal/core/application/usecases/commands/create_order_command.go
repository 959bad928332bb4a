package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer checkout: a resolved customer
// identity plus the pre-parsed order payload. All input validation of the
// item list, product references, charges and destination happens in the
// constructor, before any transaction is opened.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	customerName string
	items        []*order.Item
	deliveryFee  float64
	discount     float64
	delivery     order.DeliveryDetails
	payment      order.PaymentDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a customer order.
// Validates the customer identity, parses and validates every item
// (rejecting malformed product references with their position), and checks
// charges and destination. Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	customerName string,
	items []ItemInput,
	deliveryFee float64,
	discount float64,
	delivery order.DeliveryDetails,
	payment order.PaymentDetails,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomer(customerID, customerName); err != nil {
		return CreateOrderCommand{}, err
	}

	domainItems, err := buildItems(items)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.items = domainItems

	if err := cmd.setPayload(deliveryFee, discount, delivery, payment); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the resolved customer identity.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer name snapshot for the order header.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []*order.Item {
	return c.items
}

// DeliveryFee returns the delivery charge.
func (c CreateOrderCommand) DeliveryFee() float64 {
	return c.deliveryFee
}

// Discount returns the discount applied to the order.
func (c CreateOrderCommand) Discount() float64 {
	return c.discount
}

// Delivery returns the destination details.
func (c CreateOrderCommand) Delivery() order.DeliveryDetails {
	return c.delivery
}

// Payment returns the payment details.
func (c CreateOrderCommand) Payment() order.PaymentDetails {
	return c.payment
}

func (c *CreateOrderCommand) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setPayload(
	deliveryFee, discount float64,
	delivery order.DeliveryDetails,
	payment order.PaymentDetails,
) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("delivery fee")
	}
	if discount < 0 {
		return errs.NewValueIsInvalidError("discount")
	}
	if delivery.Address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if payment.Method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	c.deliveryFee = deliveryFee
	c.discount = discount
	c.delivery = delivery
	c.payment = payment
	return nil
}
