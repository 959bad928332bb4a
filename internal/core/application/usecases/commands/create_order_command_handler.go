package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for customer order
// creation. Builds the order aggregate from the validated command, persists
// the header and every item in one transaction, and backfills missing
// contact details on the customer record in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, "Alice", items, 3.00, 0, delivery, payment)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is in Received status, ready for the kitchen
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// The customer must already exist; if the stored record is missing a name or
// phone that the order supplies, the record is updated in the same
// transaction. Either the order header and all of its items are persisted,
// or nothing is.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Items(),
		cmd.DeliveryFee(),
		cmd.Discount(),
		cmd.Delivery(),
		cmd.Payment(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRecord, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if customerRecord.BackfillContact(cmd.CustomerName(), cmd.Delivery().Phone) {
		if err = uow.CustomerRepository().Update(ctx, customerRecord); err != nil {
			return nil, errs.NewPersistenceError("update customer", err)
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, errs.NewPersistenceError("create order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("create order", err)
	}

	return newOrder, nil
}
