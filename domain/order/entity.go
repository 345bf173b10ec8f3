// Package order defines the order records. They are migrated with the rest
// of the schema but no operation creates or transitions them yet.
package order

import (
	"time"

	"github.com/krisly/beauty-store/domain/catalog"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is a placed purchase.
type Order struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          string    `gorm:"size:255;not null;index"`
	TotalPrice      float64   `gorm:"not null"`
	Status          Status    `gorm:"size:20;not null;default:pending"`
	PaymentIntentID *string   `gorm:"size:255"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	Items           []Item    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Order) TableName() string {
	return "orders"
}

// Item snapshots the quantity and unit price of a product at order time.
type Item struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     float64         `gorm:"not null"`
	Product   catalog.Product `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Item) TableName() string {
	return "order_items"
}
