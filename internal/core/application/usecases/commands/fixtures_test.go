package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testItemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{
			ProductID: kernel.NewUUID().String(),
			Name:      "Margherita",
			Quantity:  2,
			UnitPrice: 10.00,
			Size:      "large",
			Toppings:  []string{"basil"},
		},
		{
			ProductID: kernel.NewUUID().String(),
			Name:      "Garlic Bread",
			Quantity:  1,
			UnitPrice: 5.00,
		},
	}
}

func testDelivery() order.DeliveryDetails {
	return order.DeliveryDetails{
		Address:          "12 Elm Street",
		Phone:            "+15550001111",
		EstimatedMinutes: 30,
	}
}

func testDeliveryWithAddress(address string) order.DeliveryDetails {
	delivery := testDelivery()
	delivery.Address = address
	return delivery
}

func testPayment() order.PaymentDetails {
	return order.PaymentDetails{Method: "card", Status: "pending"}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, 10.00, order.Customization{})
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Alice",
		[]*order.Item{item}, 3.00, 0, testDelivery(), testPayment(),
	)
	require.NoError(t, err)
	return o
}

func newPreparingOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newTestOrder(t)
	require.NoError(t, o.StartPreparing())
	return o
}

func newOnTheWayOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	o := newPreparingOrder(t)
	require.NoError(t, o.AssignDriver(driverID))
	return o
}

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), driver.Profile{
		Name:         "Marco",
		Email:        "marco@example.com",
		Phone:        "+15550002222",
		VehicleType:  "scooter",
		VehiclePlate: "AB-123",
	}, "downtown")
	require.NoError(t, err)
	return d
}
