package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ReceivedOrder(t *testing.T) {
	ctx := t.Context()
	orderAggregate := newTestOrder(t)
	cmd, err := commands.NewCancelOrderCommand(orderAggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, orderAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, orderAggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OnTheWayFreesDriver(t *testing.T) {
	ctx := t.Context()
	driverAggregate := newTestDriver(t)
	require.NoError(t, driverAggregate.MarkBusy(time.Now().UTC()))
	orderAggregate := newOnTheWayOrder(t, driverAggregate.ID())
	cmd, err := commands.NewCancelOrderCommand(orderAggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, orderAggregate).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountByDriverAndStatus", mock.Anything, driverAggregate.ID(),
			[]order.Status{order.OnTheWay}).Return(int64(0), nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driverAggregate.ID()).Return(driverAggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Update", mock.Anything, driverAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, orderAggregate.Status())
	assert.Equal(t, driver.Available, driverAggregate.Status())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	driverAggregate := newTestDriver(t)
	require.NoError(t, driverAggregate.MarkBusy(time.Now().UTC()))
	orderAggregate := newOnTheWayOrder(t, driverAggregate.ID())
	require.NoError(t, orderAggregate.Deliver())
	cmd, err := commands.NewCancelOrderCommand(orderAggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, order.Delivered, orderAggregate.Status())
	uow.AssertExpectations(t)
}
