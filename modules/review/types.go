package review

import (
	"context"
	"time"

	model "github.com/krisly/beauty-store/domain/review"
)

// CreateReviewRequest is the body of a new review.
type CreateReviewRequest struct {
	ProductID uint   `json:"product_id"`
	UserID    string `json:"user_id,omitempty" validate:"max=255"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

// ReviewResponse is the API representation of a review.
type ReviewResponse struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// ReviewPort is the review API used by the HTTP layer.
type ReviewPort interface {
	ListForProduct(ctx context.Context, productID uint) ([]ReviewResponse, error)
	Get(ctx context.Context, id uint) (*ReviewResponse, error)
	Create(ctx context.Context, req CreateReviewRequest) (*ReviewResponse, error)
	Delete(ctx context.Context, id uint) error
}
