package customer_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid_customer", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Jane Doe", "+15550100")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "+15550100", c.Phone())
	})

	t.Run("phone_only_is_enough", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "+15550100")

		require.NoError(t, err)
	})

	t.Run("rejects_empty_contact", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "Jane Doe", "")

		require.Error(t, err)
	})
}

func TestCustomer_BackfillContact(t *testing.T) {
	t.Run("fills_missing_fields_only", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Jane Doe", "")
		require.NoError(t, err)

		changed := c.BackfillContact("Janet", "+15550111")

		assert.True(t, changed)
		assert.Equal(t, "Jane Doe", c.Name(), "existing name must not be overwritten")
		assert.Equal(t, "+15550111", c.Phone())
	})

	t.Run("reports_no_change_when_complete", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Jane Doe", "+15550100")
		require.NoError(t, err)

		assert.False(t, c.BackfillContact("Janet", "+15550111"))
	})

	t.Run("ignores_empty_input", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "", "+15550100")
		require.NoError(t, err)

		assert.False(t, c.BackfillContact("", ""))
		assert.Empty(t, c.Name())
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var c customer.Customer

		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}
