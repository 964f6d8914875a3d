package domain

import (
	"time"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// CREATE TABLE public.orders (
//     id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     order_number  TEXT NOT NULL UNIQUE,
//     customer_id   BIGINT NOT NULL REFERENCES customers(id),
//     order_date    TIMESTAMPTZ DEFAULT NOW(),
//     status        TEXT NOT NULL DEFAULT 'Pending'
// );

type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string    `gorm:"column:order_number;type:text;unique;not null" json:"order_number"`
	CustomerID  uint      `gorm:"column:customer_id;not null" json:"customer_id"`
	OrderDate   time.Time `gorm:"column:order_date;autoCreateTime" json:"order_date"`
	Status      string    `gorm:"column:status;type:text;not null;default:Pending" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
