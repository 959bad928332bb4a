// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order is stored as a header row in "orders" plus one
// row per line in "order_items"; both sides are written together so a header
// never exists without its items.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order headers.
// Indexed by status and driver assignment for the dispatch and recount queries.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	CustomerName string
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Status       int        `gorm:"index"`

	Subtotal    float64
	DeliveryFee float64
	Discount    float64
	Total       float64

	Delivery DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Payment  PaymentDTO  `gorm:"embedded;embeddedPrefix:payment_"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the embedded destination fields within the order table.
type DeliveryDTO struct {
	Address          string
	Phone            string
	Instructions     string
	EstimatedMinutes int
}

// PaymentDTO represents the embedded payment fields within the order table.
type PaymentDTO struct {
	Method string
	Status string
}

// OrderItemDTO represents one order line. Lines are immutable after
// creation; header updates never touch them. Toppings are stored as a
// Postgres text array, the half-and-half columns stay NULL for plain items.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`

	Name       string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64

	Size         string
	Toppings     pq.StringArray `gorm:"type:text[]"`
	Instructions string

	FirstHalfProductID  *uuid.UUID     `gorm:"type:uuid"`
	SecondHalfProductID *uuid.UUID     `gorm:"type:uuid"`
	FirstHalfToppings   pq.StringArray `gorm:"type:text[]"`
	SecondHalfToppings  pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID().Bytes(), item))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		DriverID:     driverID,
		Status:       int(aggregate.Status()),
		Subtotal:     aggregate.Subtotal(),
		DeliveryFee:  aggregate.DeliveryFee(),
		Discount:     aggregate.Discount(),
		Total:        aggregate.Total(),
		Delivery: DeliveryDTO{
			Address:          aggregate.Delivery().Address,
			Phone:            aggregate.Delivery().Phone,
			Instructions:     aggregate.Delivery().Instructions,
			EstimatedMinutes: aggregate.Delivery().EstimatedMinutes,
		},
		Payment: PaymentDTO{
			Method: aggregate.Payment().Method,
			Status: aggregate.Payment().Status,
		},
		Items: items,
	}
}

func itemFromDomain(orderID uuid.UUID, item *order.Item) OrderItemDTO {
	dto := OrderItemDTO{
		ID:           uuid.New(),
		OrderID:      orderID,
		ProductID:    item.ProductID().Bytes(),
		Name:         item.Name(),
		Quantity:     item.Quantity(),
		UnitPrice:    item.UnitPrice(),
		TotalPrice:   item.TotalPrice(),
		Size:         item.Size(),
		Toppings:     item.Toppings(),
		Instructions: item.Instructions(),
	}

	if half := item.HalfAndHalf(); half != nil {
		first := half.FirstProductID().Bytes()
		second := half.SecondProductID().Bytes()
		dto.FirstHalfProductID = &first
		dto.SecondHalfProductID = &second
		dto.FirstHalfToppings = half.FirstToppings()
		dto.SecondHalfToppings = half.SecondToppings()
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		items,
		dto.DeliveryFee,
		dto.Discount,
		order.DeliveryDetails{
			Address:          dto.Delivery.Address,
			Phone:            dto.Delivery.Phone,
			Instructions:     dto.Delivery.Instructions,
			EstimatedMinutes: dto.Delivery.EstimatedMinutes,
		},
		order.PaymentDetails{
			Method: dto.Payment.Method,
			Status: dto.Payment.Status,
		},
		order.Status(dto.Status),
		driverID,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	customization := order.Customization{
		Size:         dto.Size,
		Toppings:     dto.Toppings,
		Instructions: dto.Instructions,
	}

	if dto.FirstHalfProductID != nil && dto.SecondHalfProductID != nil {
		firstID, firstErr := kernel.UUIDFromBytes((*dto.FirstHalfProductID)[:])
		if firstErr != nil {
			return nil, firstErr
		}
		secondID, secondErr := kernel.UUIDFromBytes((*dto.SecondHalfProductID)[:])
		if secondErr != nil {
			return nil, secondErr
		}

		half, halfErr := order.NewHalfAndHalf(firstID, secondID,
			dto.FirstHalfToppings, dto.SecondHalfToppings)
		if halfErr != nil {
			return nil, halfErr
		}
		customization.HalfAndHalf = half
	}

	return order.RestoreItem(productID, dto.Name, dto.Quantity,
		dto.UnitPrice, dto.TotalPrice, customization)
}
