// Package contact defines the storage record for contact form submissions.
package contact

import "time"

// Message is a stored contact form submission.
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null"`
	Subject   string    `gorm:"size:255;not null"`
	Message   string    `gorm:"size:5000;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "contact_messages"
}
