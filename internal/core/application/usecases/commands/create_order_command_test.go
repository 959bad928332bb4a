package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		customerID, "Alice", testItemInputs(), 3.00, 0, testDelivery(), testPayment())
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Alice", cmd.CustomerName())
	assert.Len(t, cmd.Items(), 2)
	assert.InDelta(t, 3.00, cmd.DeliveryFee(), 0.001)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, "Alice", testItemInputs(), 3.00, 0, testDelivery(), testPayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Alice", nil, 3.00, 0, testDelivery(), testPayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_MalformedProductReference(t *testing.T) {
	items := testItemInputs()
	items[1].ProductID = "not-a-uuid"

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Alice", items, 3.00, 0, testDelivery(), testPayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidProductReference)
	assert.Contains(t, err.Error(), "items[1]")
}

func TestNewCreateOrderCommand_NegativeDeliveryFee(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Alice", testItemInputs(), -1.00, 0, testDelivery(), testPayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_MissingAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Alice", testItemInputs(), 3.00, 0,
		testDeliveryWithAddress(""), testPayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
