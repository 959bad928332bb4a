// Package http exposes the fulfillment use cases over a JSON HTTP API.
// Handlers translate requests into commands and queries, and map domain
// errors onto HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createManualOrderHandler commands.CreateManualOrderCommandHandler
	startPreparingHandler    commands.StartPreparingCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	releaseDriverHandler     commands.ReleaseDriverCommandHandler
	completeDeliveryHandler  commands.CompleteDeliveryCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	dispatchNextOrderHandler commands.DispatchNextOrderCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	updateDriverHandler      commands.UpdateDriverCommandHandler
	deleteDriverHandler      commands.DeleteDriverCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createManualOrderHandler commands.CreateManualOrderCommandHandler,
	startPreparingHandler commands.StartPreparingCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	releaseDriverHandler commands.ReleaseDriverCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	dispatchNextOrderHandler commands.DispatchNextOrderCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverHandler commands.UpdateDriverCommandHandler,
	deleteDriverHandler commands.DeleteDriverCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		createManualOrderHandler:   createManualOrderHandler,
		startPreparingHandler:      startPreparingHandler,
		assignDriverHandler:        assignDriverHandler,
		releaseDriverHandler:       releaseDriverHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		cancelOrderHandler:         cancelOrderHandler,
		dispatchNextOrderHandler:   dispatchNextOrderHandler,
		createDriverHandler:        createDriverHandler,
		updateDriverHandler:        updateDriverHandler,
		deleteDriverHandler:        deleteDriverHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getAvailableDriversHandler: getAvailableDriversHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/manual", s.CreateManualOrder)
	api.POST("/orders/dispatch", s.DispatchNextOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/prepare", s.StartPreparing)
	api.POST("/orders/:id/assign", s.AssignDriver)
	api.POST("/orders/:id/release", s.ReleaseDriver)
	api.POST("/orders/:id/deliver", s.CompleteDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.GET("/drivers/available", s.GetAvailableDrivers)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates an order for a known customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		request.CustomerName,
		itemInputsFromRequest(request.Items),
		request.DeliveryFee,
		request.Discount,
		deliveryFromRequest(request.Delivery),
		paymentFromRequest(request.Payment),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// CreateManualOrder handles POST /api/v1/orders/manual - creates a phone order,
// looking up or registering the customer by phone number.
func (s *Server) CreateManualOrder(ctx echo.Context) error {
	var request CreateManualOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateManualOrderCommand(
		request.CustomerName,
		request.CustomerPhone,
		itemInputsFromRequest(request.Items),
		request.DeliveryFee,
		request.Discount,
		deliveryFromRequest(request.Delivery),
		paymentFromRequest(request.Payment),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createManualOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// StartPreparing handles POST /api/v1/orders/:id/prepare.
func (s *Server) StartPreparing(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewStartPreparingCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startPreparingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/assign - couples a specific
// driver to the order and starts the delivery leg.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseDriver handles POST /api/v1/orders/:id/release - detaches the driver
// and moves the order back to preparation.
func (s *Server) ReleaseDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewReleaseDriverCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.releaseDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/deliver.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchNextOrder handles POST /api/v1/orders/dispatch - pairs the oldest
// unassigned order in preparation with the longest-idle available driver.
func (s *Server) DispatchNextOrder(ctx echo.Context) error {
	cmd, err := commands.NewDispatchNextOrderCommand()
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.dispatchNextOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = activeOrderToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request DriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(driver.Profile{
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		VehicleType:  request.VehicleType,
		VehiclePlate: request.VehiclePlate,
	}, request.CurrentLocation)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverToResponse(created))
}

// UpdateDriver handles PUT /api/v1/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	var request DriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, driver.Profile{
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		VehicleType:  request.VehicleType,
		VehiclePlate: request.VehiclePlate,
	}, request.CurrentLocation)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverToResponse(updated))
}

// DeleteDriver handles DELETE /api/v1/drivers/:id - removes the driver, or
// deactivates it when delivery history must survive.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	drivers, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AvailableDriverResponse, len(drivers))
	for i, row := range drivers {
		response[i] = availableDriverToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and application errors onto HTTP status codes.
// Validation failures are client errors, missing aggregates are 404, and
// rejected state transitions are conflicts.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidProductReference):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrActiveOrdersExist),
		errors.Is(err, errs.ErrCannotPreserveHistory),
		errors.Is(err, order.ErrNoDriverAssigned),
		errors.Is(err, driver.ErrDriverIsDeactivated),
		errors.Is(err, commands.ErrNoPendingOrders),
		errors.Is(err, commands.ErrNoAvailableDrivers):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
