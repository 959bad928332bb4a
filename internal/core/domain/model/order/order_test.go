package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []*order.Item {
	t.Helper()

	first, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, 10.00, order.Customization{})
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), "Garlic Bread", 1, 5.00, order.Customization{})
	require.NoError(t, err)

	return []*order.Item{first, second}
}

func testDelivery() order.DeliveryDetails {
	return order.DeliveryDetails{
		Address:          "12 Baker Street",
		Phone:            "+15550100",
		EstimatedMinutes: 45,
	}
}

func testPayment() order.PaymentDetails {
	return order.PaymentDetails{Method: "card", Status: "pending"}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
		testItems(t), 3.00, 0, testDelivery(), testPayment(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_totals_from_items", func(t *testing.T) {
		// 2 x 10.00 + 1 x 5.00 + fee 3.00 - discount 0 = 25.00
		o := newTestOrder(t)

		assert.Equal(t, order.Received, o.Status())
		assert.Nil(t, o.Driver())
		assert.InDelta(t, 25.00, o.Subtotal(), 0.0001)
		assert.InDelta(t, 28.00, o.Total(), 0.0001)
		assert.Len(t, o.Items(), 2)
	})

	t.Run("total_equals_items_plus_fee_minus_discount", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), 3.00, 5.00, testDelivery(), testPayment(),
		)

		require.NoError(t, err)
		assert.InDelta(t, 23.00, o.Total(), 0.0001)
	})

	t.Run("rejects_empty_item_list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			nil, 3.00, 0, testDelivery(), testPayment(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_total", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), 0, 100.00, testDelivery(), testPayment(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_delivery_address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), 3.00, 0, order.DeliveryDetails{}, testPayment(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_charges", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), -1.00, 0, testDelivery(), testPayment(),
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), 3.00, -1.00, testDelivery(), testPayment(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_customer", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.UUID{}, "Jane Doe",
			testItems(t), 3.00, 0, testDelivery(), testPayment(),
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "",
			testItems(t), 3.00, 0, testDelivery(), testPayment(),
		)
		require.Error(t, err)
	})
}

func TestOrder_StartPreparing(t *testing.T) {
	t.Run("received_to_preparing", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.StartPreparing())
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("fails_from_preparing", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())

		err := o.StartPreparing()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("preparing_to_on_the_way", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		driverID := kernel.NewUUID()

		require.NoError(t, o.AssignDriver(driverID))

		assert.Equal(t, order.OnTheWay, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, driverID.IsEqual(*o.Driver()))
	})

	t.Run("fails_when_not_preparing", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Received, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("fails_when_already_on_the_way", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.AssignDriver(kernel.NewUUID()))

		err := o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("fails_with_invalid_driver_id", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())

		require.Error(t, o.AssignDriver(kernel.UUID{}))
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_ReleaseDriver(t *testing.T) {
	t.Run("on_the_way_back_to_preparing", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(driverID))

		released, err := o.ReleaseDriver()

		require.NoError(t, err)
		assert.True(t, driverID.IsEqual(released))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("fails_without_driver", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ReleaseDriver()

		require.ErrorIs(t, err, order.ErrNoDriverAssigned)
	})

	t.Run("fails_when_delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.AssignDriver(kernel.NewUUID()))
		require.NoError(t, o.Deliver())

		_, err := o.ReleaseDriver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("fails_when_cancelled_with_driver_reference", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(driverID))
		require.NoError(t, o.Cancel())

		_, err := o.ReleaseDriver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, driverID.IsEqual(*o.Driver()))
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("on_the_way_to_delivered_keeps_driver", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(driverID))

		require.NoError(t, o.Deliver())

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, driverID.IsEqual(*o.Driver()))
	})

	t.Run("fails_without_dispatch", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())

		err := o.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels_from_any_non_terminal_state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())

		o = newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("fails_when_delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.AssignDriver(kernel.NewUUID()))
		require.NoError(t, o.Deliver())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("fails_when_already_cancelled", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		require.Error(t, o.Cancel())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_status_and_driver", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), "Jane Doe",
			testItems(t), 3.00, 0, testDelivery(), testPayment(),
			order.OnTheWay, &driverID,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, driverID.IsEqual(*o.Driver()))
	})

	t.Run("rejects_on_the_way_without_driver", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), 3.00, 0, testDelivery(), testPayment(),
			order.OnTheWay, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_preparing_with_driver", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe",
			testItems(t), 3.00, 0, testDelivery(), testPayment(),
			order.Preparing, &driverID,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("constructed_order_is_valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})
}
