package catalog

import (
	"context"
	"time"

	model "github.com/krisly/beauty-store/domain/catalog"
)

// Paging defaults for product listings.
const (
	DefaultLimit         = 100
	MaxLimit             = 1000
	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 100
)

// Criteria selects how featured products are chosen.
type Criteria string

const (
	CriteriaFeatured Criteria = "featured"
	CriteriaRating   Criteria = "rating"
	CriteriaSales    Criteria = "sales"
)

// ProductRequest is the body of create and update calls. Update overwrites
// every field, so omitted values fall back to their defaults.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required,notblank,max=255"`
	Description string   `json:"description" validate:"max=2000"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"max=100"`
	Image       string   `json:"image" validate:"max=1000"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	SalesCount  int      `json:"sales_count" validate:"gte=0"`
	IsFeatured  bool     `json:"is_featured"`
}

// ListProductsRequest filters and pages a product listing. A nil Limit
// means DefaultLimit; zero yields an empty page.
type ListProductsRequest struct {
	Category string
	Skip     int
	Limit    *int
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	SalesCount  int       `json:"sales_count"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToProductResponse converts a stored product to its API form.
func ToProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Stock:       p.Stock,
		Rating:      p.Rating,
		SalesCount:  p.SalesCount,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
	}
}

// CatalogPort is the catalog API used by the HTTP layer.
type CatalogPort interface {
	List(ctx context.Context, req ListProductsRequest) ([]ProductResponse, error)
	Get(ctx context.Context, id uint) (*ProductResponse, error)
	Featured(ctx context.Context, criteria Criteria, limit int) ([]ProductResponse, error)
	Create(ctx context.Context, req ProductRequest) (*ProductResponse, error)
	Update(ctx context.Context, id uint, req ProductRequest) (*ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	Seed(ctx context.Context, products []ProductRequest) (int, error)
}
