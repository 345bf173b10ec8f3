package contact

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	model "github.com/krisly/beauty-store/domain/contact"
	"github.com/krisly/beauty-store/internal/apperr"
)

// Repository provides access to contact message storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a contact repository bound to db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new message.
func (r *Repository) Create(msg *model.Message) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// FindAll returns every message in id order.
func (r *Repository) FindAll() ([]model.Message, error) {
	var msgs []model.Message
	if err := r.db.Order("id ASC").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return msgs, nil
}

// FindByID retrieves a message by its ID.
func (r *Repository) FindByID(id uint) (*model.Message, error) {
	var msg model.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("contact message")
		}
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}
	return &msg, nil
}

// Delete removes a message.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&model.Message{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("contact message")
	}
	return nil
}
