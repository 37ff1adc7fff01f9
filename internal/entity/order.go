package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus mirrors the order_status enum of the orders table.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every status in funnel order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (os OrderStatus) String() string {
	return string(os)
}

// IsRevenue reports whether orders in this status count towards revenue.
func (os OrderStatus) IsRevenue() bool {
	switch os {
	case OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Order represents the orders table
type Order struct {
	ID        string          `db:"id"`
	UserID    sql.NullString  `db:"user_id"`
	Total     decimal.Decimal `db:"total"`
	Status    OrderStatus     `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
	Items     []OrderItem
}

// IsGuest is true for orders placed without an account.
func (o *Order) IsGuest() bool {
	return !o.UserID.Valid || o.UserID.String == ""
}

func (o *Order) TotalFloat() float64 {
	return o.Total.InexactFloat64()
}

// OrderItem represents the order_items table
type OrderItem struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}
