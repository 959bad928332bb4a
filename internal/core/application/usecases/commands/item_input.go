package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// HalfAndHalfInput is the pre-parsed half-and-half payload of an order item:
// two product references in canonical textual form plus per-half topping names.
type HalfAndHalfInput struct {
	FirstProductID  string
	SecondProductID string
	FirstToppings   []string
	SecondToppings  []string
}

// ItemInput is one pre-parsed order line as received from the boundary.
// Product identifiers arrive in canonical textual form and are validated
// here, before any row is written.
type ItemInput struct {
	ProductID    string
	Name         string
	Quantity     int
	UnitPrice    float64
	Size         string
	Toppings     []string
	Instructions string
	HalfAndHalf  *HalfAndHalfInput
}

// buildItems converts boundary item inputs into validated domain items.
// A malformed product identifier fails with an InvalidProductReferenceError
// naming the offending item's position; any other per-item validation failure
// is reported with the position as context. Nothing has been written when
// any of these errors is returned.
func buildItems(inputs []ItemInput) ([]*order.Item, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]*order.Item, 0, len(inputs))
	for i, input := range inputs {
		productID, err := kernel.UUIDFromString(input.ProductID)
		if err != nil {
			return nil, errs.NewInvalidProductReferenceErrorWithCause(i, input.ProductID, err)
		}

		customization := order.Customization{
			Size:         input.Size,
			Toppings:     input.Toppings,
			Instructions: input.Instructions,
		}

		if input.HalfAndHalf != nil {
			half, halfErr := buildHalfAndHalf(i, input.HalfAndHalf)
			if halfErr != nil {
				return nil, halfErr
			}
			customization.HalfAndHalf = half
		}

		item, err := order.NewItem(productID, input.Name, input.Quantity, input.UnitPrice, customization)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		items = append(items, item)
	}

	return items, nil
}

func buildHalfAndHalf(position int, input *HalfAndHalfInput) (*order.HalfAndHalf, error) {
	first, err := kernel.UUIDFromString(input.FirstProductID)
	if err != nil {
		return nil, errs.NewInvalidProductReferenceErrorWithCause(position, input.FirstProductID, err)
	}

	second, err := kernel.UUIDFromString(input.SecondProductID)
	if err != nil {
		return nil, errs.NewInvalidProductReferenceErrorWithCause(position, input.SecondProductID, err)
	}

	return order.NewHalfAndHalf(first, second, input.FirstToppings, input.SecondToppings)
}
