package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateManualOrderCommandHandler handles staff-entered order creation.
// Resolves the customer by phone number, creating a record on the fly for
// first-time callers, then persists the order the same way the customer
// checkout path does. Everything happens in one transaction.
type CreateManualOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateManualOrderCommandHandler creates a handler for staff-entered orders.
func NewCreateManualOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateManualOrderCommandHandler {
	return CreateManualOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual order creation command and returns the created
// order. An unknown phone number creates a new customer record; a known one
// gets missing contact fields backfilled.
func (h *CreateManualOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateManualOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRecord, err := h.resolveCustomer(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		customerRecord.ID(),
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, errs.NewPersistenceError("create order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("create order", err)
	}

	return newOrder, nil
}

func (h *CreateManualOrderCommandHandler) resolveCustomer(
	ctx context.Context, uow CheckoutUoW, cmd CreateManualOrderCommand,
) (*customer.Customer, error) {
	existing, err := uow.CustomerRepository().GetByPhone(ctx, cmd.CustomerPhone())
	if err == nil {
		if existing.BackfillContact(cmd.CustomerName(), cmd.CustomerPhone()) {
			if updateErr := uow.CustomerRepository().Update(ctx, existing); updateErr != nil {
				return nil, errs.NewPersistenceError("update customer", updateErr)
			}
		}
		return existing, nil
	}

	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := customer.NewCustomer(kernel.NewUUID(), cmd.CustomerName(), cmd.CustomerPhone())
	if err != nil {
		return nil, err
	}
	if err = uow.CustomerRepository().Add(ctx, created); err != nil {
		return nil, errs.NewPersistenceError("create customer", err)
	}
	return created, nil
}
