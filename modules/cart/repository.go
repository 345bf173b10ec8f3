package cart

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "github.com/krisly/beauty-store/domain/cart"
	"github.com/krisly/beauty-store/internal/apperr"
)

// Repository provides access to cart storage over one session or transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a cart repository bound to db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the cart for userID, inserting an empty one if needed.
// Concurrent first calls for the same user all succeed.
func (r *Repository) GetOrCreate(userID string) (*model.Cart, error) {
	err := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&model.Cart{UserID: userID}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	var c model.Cart
	if err := r.db.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &c, nil
}

// Items returns the lines of a cart with their products, in insertion order.
func (r *Repository) Items(cartID uint) ([]model.Item, error) {
	var items []model.Item
	err := r.db.Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	return items, nil
}

// AddQuantity inserts a cart line or, when the product is already in the
// cart, increments its quantity in the same statement.
func (r *Repository) AddQuantity(cartID, productID uint, quantity int) error {
	item := model.Item{CartID: cartID, ProductID: productID, Quantity: quantity}
	err := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// FindItem returns a line that belongs to cartID.
func (r *Repository) FindItem(cartID, itemID uint) (*model.Item, error) {
	var item model.Item
	if err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cart item")
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

// SetQuantity overwrites the quantity of a line.
func (r *Repository) SetQuantity(itemID uint, quantity int) error {
	err := r.db.Model(&model.Item{}).Where("id = ?", itemID).Update("quantity", quantity).Error
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// DeleteItem removes a line that belongs to cartID.
func (r *Repository) DeleteItem(cartID, itemID uint) error {
	result := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&model.Item{})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("cart item")
	}
	return nil
}

// DeleteAll removes every line of a cart.
func (r *Repository) DeleteAll(cartID uint) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&model.Item{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
