package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is append-only: everything except Status is frozen at placement time.
// Item prices are snapshots, so later catalog edits never change a total.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress Address         `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)" json:"total"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2)" json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is quantity × the price captured at placement.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
