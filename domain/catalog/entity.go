// Package catalog defines the storage record for store products.
package catalog

import "time"

// DefaultRating is the rating a product carries before any review exists.
const DefaultRating = 4.5

// Product is a sellable item in the catalog.
type Product struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null;index"`
	Description string    `gorm:"size:2000"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"size:100;index"`
	Image       string    `gorm:"size:1000"`
	Stock       int       `gorm:"not null;default:0"`
	Rating      float64   `gorm:"not null;default:4.5"`
	SalesCount  int       `gorm:"not null;default:0"`
	IsFeatured  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (Product) TableName() string {
	return "products"
}
