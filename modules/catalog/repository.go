package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	cartmodel "github.com/krisly/beauty-store/domain/cart"
	model "github.com/krisly/beauty-store/domain/catalog"
	ordermodel "github.com/krisly/beauty-store/domain/order"
	reviewmodel "github.com/krisly/beauty-store/domain/review"
	"github.com/krisly/beauty-store/internal/apperr"
)

// Repository provides access to product storage over one session or transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a product repository bound to db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new product.
func (r *Repository) Create(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID.
func (r *Repository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// FindPage returns products in id order, optionally restricted to one category.
func (r *Repository) FindPage(category string, skip, limit int) ([]model.Product, error) {
	query := r.db.Model(&model.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []model.Product
	if err := query.Order("id ASC").Offset(skip).Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindTop returns up to limit products ranked for criteria.
func (r *Repository) FindTop(criteria Criteria, limit int) ([]model.Product, error) {
	query := r.db.Model(&model.Product{})
	switch criteria {
	case CriteriaFeatured:
		query = query.Where("is_featured = ?", true).Order("id ASC")
	case CriteriaRating:
		query = query.Order("rating DESC").Order("id ASC")
	case CriteriaSales:
		query = query.Order("sales_count DESC").Order("id ASC")
	default:
		return nil, apperr.Invalid(fmt.Sprintf("unknown criteria %q", criteria))
	}

	var products []model.Product
	if err := query.Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return products, nil
}

// Save overwrites every column of an existing product.
func (r *Repository) Save(product *model.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product together with the cart items, order items and
// reviews that reference it. Call it inside a transaction.
func (r *Repository) Delete(id uint) error {
	dependents := []any{&cartmodel.Item{}, &ordermodel.Item{}, &reviewmodel.Review{}}
	for _, dep := range dependents {
		if err := r.db.Where("product_id = ?", id).Delete(dep).Error; err != nil {
			return fmt.Errorf("failed to delete product references: %w", err)
		}
	}

	result := r.db.Delete(&model.Product{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("product")
	}
	return nil
}

// Count returns the number of stored products.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
