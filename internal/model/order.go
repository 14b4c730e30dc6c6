package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order workflow states. Any transition
// between known states is allowed; unknown values are rejected at the edge.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus validates a raw status string against the enum.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Order is a customer purchase request. Total is computed at placement time
// from per-item price snapshots, never supplied by the caller.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName  string    `gorm:"not null"`
	CustomerEmail *string
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem belongs exclusively to its order. Price is frozen at order
// time; later product price changes never touch it.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
