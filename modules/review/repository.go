package review

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogmodel "github.com/krisly/beauty-store/domain/catalog"
	model "github.com/krisly/beauty-store/domain/review"
	"github.com/krisly/beauty-store/internal/apperr"
)

// Repository provides access to review storage over one session or transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a review repository bound to db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new review.
func (r *Repository) Create(review *model.Review) error {
	if err := r.db.Omit(clause.Associations).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// FindByID retrieves a review by its ID.
func (r *Repository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("review")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return &review, nil
}

// FindByProduct returns the reviews of a product in id order.
func (r *Repository) FindByProduct(productID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Where("product_id = ?", productID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Delete removes a review.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&model.Review{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("review")
	}
	return nil
}

// RecomputeRating writes the mean review rating of a product to
// products.rating, or the default rating when it has no reviews, and
// returns the value written.
func (r *Repository) RecomputeRating(productID uint) (float64, error) {
	var avg sql.NullFloat64
	row := r.db.Model(&model.Review{}).
		Select("AVG(rating)").
		Where("product_id = ?", productID).
		Row()
	if err := row.Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average ratings: %w", err)
	}

	rating := catalogmodel.DefaultRating
	if avg.Valid {
		rating = avg.Float64
	}

	err := r.db.Model(&catalogmodel.Product{}).
		Where("id = ?", productID).
		UpdateColumn("rating", rating).Error
	if err != nil {
		return 0, fmt.Errorf("failed to update product rating: %w", err)
	}
	return rating, nil
}
