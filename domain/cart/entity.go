// Package cart defines the storage records for shopping carts.
package cart

import (
	"time"

	"github.com/krisly/beauty-store/domain/catalog"
)

// Cart is the per-user basket. One row exists per user id.
type Cart struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Items     []Item    `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Cart) TableName() string {
	return "carts"
}

// Item is one product line in a cart. (cart_id, product_id) is unique.
type Item struct {
	ID        uint            `gorm:"primaryKey"`
	CartID    uint            `gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_cart_items_cart_product;index"`
	Quantity  int             `gorm:"not null;default:1"`
	Product   catalog.Product `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Item) TableName() string {
	return "cart_items"
}
