package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// HalfAndHalf describes an item composed of two distinct product halves,
// each with its own topping set. Both halves must reference existing products.
type HalfAndHalf struct {
	firstProductID  kernel.UUID
	secondProductID kernel.UUID
	firstToppings   []string
	secondToppings  []string
}

// NewHalfAndHalf creates a half-and-half composition from two product references
// and their per-half topping lists. Both product identifiers must be valid.
func NewHalfAndHalf(
	firstProductID, secondProductID kernel.UUID,
	firstToppings, secondToppings []string,
) (*HalfAndHalf, error) {
	if err := errors.Join(
		firstProductID.Validate(),
		secondProductID.Validate(),
	); err != nil {
		return nil, err
	}

	return &HalfAndHalf{
		firstProductID:  firstProductID,
		secondProductID: secondProductID,
		firstToppings:   firstToppings,
		secondToppings:  secondToppings,
	}, nil
}

// FirstProductID returns the product reference of the first half.
func (h *HalfAndHalf) FirstProductID() kernel.UUID {
	return h.firstProductID
}

// SecondProductID returns the product reference of the second half.
func (h *HalfAndHalf) SecondProductID() kernel.UUID {
	return h.secondProductID
}

// FirstToppings returns the topping names for the first half.
func (h *HalfAndHalf) FirstToppings() []string {
	return h.firstToppings
}

// SecondToppings returns the topping names for the second half.
func (h *HalfAndHalf) SecondToppings() []string {
	return h.secondToppings
}

// Customization carries the optional parts of an order item: portion size,
// topping names, free-text kitchen instructions, and an optional half-and-half
// composition. The zero value means an unmodified item.
type Customization struct {
	Size         string
	Toppings     []string
	Instructions string
	HalfAndHalf  *HalfAndHalf
}

// Item is one line of an order: a product reference with a name snapshot,
// quantity, pricing, and optional customization. Items are immutable after
// creation; the parent Order owns them.
//
// Invariant: totalPrice always equals quantity × unitPrice. NewItem computes
// it and RestoreItem re-verifies it when loading from persistence.
type Item struct {
	productID     kernel.UUID
	name          string
	quantity      int
	unitPrice     float64
	totalPrice    float64
	customization Customization

	isConstructed bool
}

// NewItem creates a validated order line. The product identifier must be valid,
// the name snapshot non-empty, quantity at least 1 and unit price non-negative.
// The line total is computed, never accepted from the caller.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice float64, customization Customization) (*Item, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%.2f is negative", unitPrice))
	}

	return &Item{
		productID:     productID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    float64(quantity) * unitPrice,
		customization: customization,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence. The stored line
// total must still equal quantity × unit price; a mismatch means the row was
// corrupted outside the application and is rejected.
func RestoreItem(
	productID kernel.UUID,
	name string,
	quantity int,
	unitPrice float64,
	totalPrice float64,
	customization Customization,
) (*Item, error) {
	item, err := NewItem(productID, name, quantity, unitPrice, customization)
	if err != nil {
		return nil, err
	}

	if item.totalPrice != totalPrice {
		return nil, errs.NewValueIsInvalidErrorWithCause("total price",
			fmt.Errorf("%.2f does not equal %d x %.2f", totalPrice, quantity, unitPrice))
	}

	return item, nil
}

// Validate ensures the Item was created through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot taken at order time.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at order time.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns quantity × unit price.
func (i *Item) TotalPrice() float64 {
	return i.totalPrice
}

// Size returns the optional portion size, empty when not chosen.
func (i *Item) Size() string {
	return i.customization.Size
}

// Toppings returns the optional topping names.
func (i *Item) Toppings() []string {
	return i.customization.Toppings
}

// Instructions returns the optional free-text kitchen instructions.
func (i *Item) Instructions() string {
	return i.customization.Instructions
}

// HalfAndHalf returns the optional half-and-half composition, nil when absent.
func (i *Item) HalfAndHalf() *HalfAndHalf {
	return i.customization.HalfAndHalf
}
