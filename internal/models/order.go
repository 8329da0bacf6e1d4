package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusNew       OrderStatus = "New"
	StatusPreparing OrderStatus = "Preparing"
	StatusOnTheWay  OrderStatus = "On the way"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every known status in lifecycle order
var OrderStatuses = []OrderStatus{StatusNew, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Cancellable reports whether an order in this status may still be cancelled
func (s OrderStatus) Cancellable() bool {
	switch s {
	case StatusPreparing, StatusOnTheWay, StatusDelivered:
		return false
	}
	return true
}

// Order is placed by a user and owns copies of the pizzas it was created with
type Order struct {
	ID              uint            `gorm:"primaryKey"`
	UserID          uint            `gorm:"not null;index"`
	Username        string          `gorm:"not null;index"`
	Pizzas          []OrderPizza    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `gorm:"not null;default:'New'"`
	DeliveryAddress string
	CreatedAt       time.Time `gorm:"not null"`
}

// OrderPizza is a snapshot of a catalog pizza taken when the order was created
type OrderPizza struct {
	ID      uint            `gorm:"primaryKey"`
	OrderID uint            `gorm:"not null;index"`
	PizzaID uint            `gorm:"not null"`
	Name    string          `gorm:"not null"`
	Size    PizzaSize       `gorm:"not null"`
	Price   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// SnapshotOf copies the fields of a catalog pizza into an order line
func SnapshotOf(p Pizza) OrderPizza {
	return OrderPizza{
		PizzaID: p.ID,
		Name:    p.Name,
		Size:    p.Size,
		Price:   p.Price,
	}
}

func (o Order) ToDTO() DTO {
	return DTO{
		"id":               o.ID,
		"user_id":          o.UserID,
		"username":         o.Username,
		"total_price":      o.TotalPrice.String(),
		"status":           string(o.Status),
		"delivery_address": o.DeliveryAddress,
		"created_at":       formatTime(o.CreatedAt),
	}
}

func (o *Order) FromDTO(dto DTO) error {
	if err := requireKeys(dto, "username"); err != nil {
		return err
	}
	*o = Order{Status: StatusNew}
	return o.ApplyDTO(dto)
}

func (o *Order) ApplyDTO(dto DTO) error {
	if id, ok, err := dtoUint(dto, "id"); err != nil {
		return err
	} else if ok {
		o.ID = id
	}
	if userID, ok, err := dtoUint(dto, "user_id"); err != nil {
		return err
	} else if ok {
		o.UserID = userID
	}
	if username, ok, err := dtoString(dto, "username"); err != nil {
		return err
	} else if ok {
		o.Username = username
	}
	if total, ok, err := dtoDecimal(dto, "total_price"); err != nil {
		return err
	} else if ok {
		o.TotalPrice = total
	}
	if status, ok, err := dtoString(dto, "status"); err != nil {
		return err
	} else if ok {
		if !OrderStatus(status).Valid() {
			return NewValidationError(fmt.Sprintf("unknown order status '%s'", status))
		}
		o.Status = OrderStatus(status)
	}
	if address, ok, err := dtoString(dto, "delivery_address"); err != nil {
		return err
	} else if ok {
		o.DeliveryAddress = address
	}
	if createdAt, ok, err := dtoTime(dto, "created_at"); err != nil {
		return err
	} else if ok {
		o.CreatedAt = createdAt
	}
	return nil
}

func (op OrderPizza) ToDTO() DTO {
	return DTO{
		"id":       op.ID,
		"order_id": op.OrderID,
		"pizza_id": op.PizzaID,
		"name":     op.Name,
		"size":     string(op.Size),
		"price":    op.Price.String(),
	}
}

func (op *OrderPizza) FromDTO(dto DTO) error {
	if err := requireKeys(dto, "pizza_id", "name", "price"); err != nil {
		return err
	}
	*op = OrderPizza{}
	return op.ApplyDTO(dto)
}

func (op *OrderPizza) ApplyDTO(dto DTO) error {
	ids := map[string]*uint{"id": &op.ID, "order_id": &op.OrderID, "pizza_id": &op.PizzaID}
	for key, target := range ids {
		if value, ok, err := dtoUint(dto, key); err != nil {
			return err
		} else if ok {
			*target = value
		}
	}
	if name, ok, err := dtoString(dto, "name"); err != nil {
		return err
	} else if ok {
		op.Name = name
	}
	if size, ok, err := dtoString(dto, "size"); err != nil {
		return err
	} else if ok {
		op.Size = PizzaSize(size)
	}
	if price, ok, err := dtoDecimal(dto, "price"); err != nil {
		return err
	} else if ok {
		op.Price = price
	}
	return nil
}
