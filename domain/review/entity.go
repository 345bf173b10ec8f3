// Package review defines the storage record for product reviews.
package review

import (
	"time"

	"github.com/krisly/beauty-store/domain/catalog"
)

// AnonymousUser is recorded when a review is posted without a user id.
const AnonymousUser = "anonymous"

// Review is a 1 to 5 star rating of a product with an optional comment.
type Review struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"not null;index"`
	UserID    string          `gorm:"size:255;not null;default:anonymous"`
	Rating    int             `gorm:"not null"`
	Comment   string          `gorm:"size:2000"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	Product   catalog.Product `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Review) TableName() string {
	return "reviews"
}
