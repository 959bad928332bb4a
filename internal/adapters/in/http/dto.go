package http

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HalfAndHalfRequest describes a pizza split into two half recipes.
type HalfAndHalfRequest struct {
	FirstProductID  string   `json:"first_product_id"`
	SecondProductID string   `json:"second_product_id"`
	FirstToppings   []string `json:"first_toppings,omitempty"`
	SecondToppings  []string `json:"second_toppings,omitempty"`
}

// OrderItemRequest is one line of an incoming order.
type OrderItemRequest struct {
	ProductID    string              `json:"product_id"`
	Name         string              `json:"name"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    float64             `json:"unit_price"`
	Size         string              `json:"size,omitempty"`
	Toppings     []string            `json:"toppings,omitempty"`
	Instructions string              `json:"instructions,omitempty"`
	HalfAndHalf  *HalfAndHalfRequest `json:"half_and_half,omitempty"`
}

// DeliveryRequest carries the delivery details of an incoming order.
type DeliveryRequest struct {
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Instructions     string `json:"instructions,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
}

// PaymentRequest carries how the order is paid.
type PaymentRequest struct {
	Method string `json:"method"`
	Status string `json:"status,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items"`
	DeliveryFee  float64            `json:"delivery_fee"`
	Discount     float64            `json:"discount"`
	Delivery     DeliveryRequest    `json:"delivery"`
	Payment      PaymentRequest     `json:"payment"`
}

// CreateManualOrderRequest is the body of POST /api/v1/orders/manual.
// It identifies the customer by phone instead of ID.
type CreateManualOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []OrderItemRequest `json:"items"`
	DeliveryFee   float64            `json:"delivery_fee"`
	Discount      float64            `json:"discount"`
	Delivery      DeliveryRequest    `json:"delivery"`
	Payment       PaymentRequest     `json:"payment"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:id/assign.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// DriverRequest is the body of driver create and update calls.
type DriverRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	VehicleType     string `json:"vehicle_type,omitempty"`
	VehiclePlate    string `json:"vehicle_plate,omitempty"`
	CurrentLocation string `json:"current_location,omitempty"`
}

// OrderItemResponse is one line of a returned order.
type OrderItemResponse struct {
	ProductID    string              `json:"product_id"`
	Name         string              `json:"name"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    float64             `json:"unit_price"`
	TotalPrice   float64             `json:"total_price"`
	Size         string              `json:"size,omitempty"`
	Toppings     []string            `json:"toppings,omitempty"`
	Instructions string              `json:"instructions,omitempty"`
	HalfAndHalf  *HalfAndHalfRequest `json:"half_and_half,omitempty"`
}

// OrderResponse is the full representation of a created order.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Status       string              `json:"status"`
	DriverID     *string             `json:"driver_id,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     float64             `json:"subtotal"`
	DeliveryFee  float64             `json:"delivery_fee"`
	Discount     float64             `json:"discount"`
	Total        float64             `json:"total"`
	Delivery     DeliveryRequest     `json:"delivery"`
	Payment      PaymentRequest      `json:"payment"`
}

// ActiveOrderResponse is one row of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	Status       string  `json:"status"`
	DriverID     *string `json:"driver_id,omitempty"`
	Total        float64 `json:"total"`
	Address      string  `json:"address"`
	CreatedAt    string  `json:"created_at"`
}

// DriverResponse is the full representation of a driver.
type DriverResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	VehicleType     string `json:"vehicle_type,omitempty"`
	VehiclePlate    string `json:"vehicle_plate,omitempty"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location,omitempty"`
	TotalDeliveries int    `json:"total_deliveries"`
	Active          bool   `json:"active"`
}

// AvailableDriverResponse is one row of GET /api/v1/drivers/available.
type AvailableDriverResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone,omitempty"`
	VehicleType     string `json:"vehicle_type,omitempty"`
	CurrentLocation string `json:"current_location,omitempty"`
	TotalDeliveries int    `json:"total_deliveries"`
	LastActiveAt    string `json:"last_active_at"`
}

func itemInputsFromRequest(items []OrderItemRequest) []commands.ItemInput {
	inputs := make([]commands.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.ItemInput{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Size:         item.Size,
			Toppings:     item.Toppings,
			Instructions: item.Instructions,
		}
		if item.HalfAndHalf != nil {
			inputs[i].HalfAndHalf = &commands.HalfAndHalfInput{
				FirstProductID:  item.HalfAndHalf.FirstProductID,
				SecondProductID: item.HalfAndHalf.SecondProductID,
				FirstToppings:   item.HalfAndHalf.FirstToppings,
				SecondToppings:  item.HalfAndHalf.SecondToppings,
			}
		}
	}
	return inputs
}

func deliveryFromRequest(req DeliveryRequest) order.DeliveryDetails {
	return order.DeliveryDetails{
		Address:          req.Address,
		Phone:            req.Phone,
		Instructions:     req.Instructions,
		EstimatedMinutes: req.EstimatedMinutes,
	}
}

func paymentFromRequest(req PaymentRequest) order.PaymentDetails {
	return order.PaymentDetails{
		Method: req.Method,
		Status: req.Status,
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			ProductID:    item.ProductID().String(),
			Name:         item.Name(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
			TotalPrice:   item.TotalPrice(),
			Size:         item.Size(),
			Toppings:     item.Toppings(),
			Instructions: item.Instructions(),
		}
		if half := item.HalfAndHalf(); half != nil {
			items[i].HalfAndHalf = &HalfAndHalfRequest{
				FirstProductID:  half.FirstProductID().String(),
				SecondProductID: half.SecondProductID().String(),
				FirstToppings:   half.FirstToppings(),
				SecondToppings:  half.SecondToppings(),
			}
		}
	}

	response := OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
		Items:        items,
		Subtotal:     o.Subtotal(),
		DeliveryFee:  o.DeliveryFee(),
		Discount:     o.Discount(),
		Total:        o.Total(),
		Delivery: DeliveryRequest{
			Address:          o.Delivery().Address,
			Phone:            o.Delivery().Phone,
			Instructions:     o.Delivery().Instructions,
			EstimatedMinutes: o.Delivery().EstimatedMinutes,
		},
		Payment: PaymentRequest{
			Method: o.Payment().Method,
			Status: o.Payment().Status,
		},
	}
	if driverID := o.Driver(); driverID != nil {
		id := driverID.String()
		response.DriverID = &id
	}
	return response
}

func driverToResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:              d.ID().String(),
		Name:            d.Profile().Name,
		Email:           d.Profile().Email,
		Phone:           d.Profile().Phone,
		VehicleType:     d.Profile().VehicleType,
		VehiclePlate:    d.Profile().VehiclePlate,
		Status:          d.Status().String(),
		CurrentLocation: d.CurrentLocation(),
		TotalDeliveries: d.TotalDeliveries(),
		Active:          d.IsActive(),
	}
}

func activeOrderToResponse(row queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	response := ActiveOrderResponse{
		ID:           row.ID.String(),
		CustomerName: row.CustomerName,
		Status:       row.Status,
		Total:        row.Total,
		Address:      row.Address,
		CreatedAt:    row.CreatedAt.Format(timeFormat),
	}
	if row.DriverID != nil {
		id := row.DriverID.String()
		response.DriverID = &id
	}
	return response
}

func availableDriverToResponse(row queries.GetAvailableDriversQueryResponse) AvailableDriverResponse {
	return AvailableDriverResponse{
		ID:              row.ID.String(),
		Name:            row.Name,
		Phone:           row.Phone,
		VehicleType:     row.VehicleType,
		CurrentLocation: row.CurrentLocation,
		TotalDeliveries: row.TotalDeliveries,
		LastActiveAt:    row.LastActiveAt.Format(timeFormat),
	}
}
