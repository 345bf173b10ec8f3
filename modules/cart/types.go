package cart

import (
	"context"

	"github.com/krisly/beauty-store/modules/catalog"
)

// AddItemRequest adds a product to a cart. Quantity defaults to 1.
type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// UpdateItemRequest sets the quantity of a cart line. Zero or less removes it.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemResponse is one cart line with its product embedded.
type ItemResponse struct {
	ID        uint                    `json:"id"`
	ProductID uint                    `json:"product_id"`
	Quantity  int                     `json:"quantity"`
	Product   catalog.ProductResponse `json:"product"`
}

// CartResponse is the API representation of a cart. TotalPrice is derived
// from the current product prices on every read.
type CartResponse struct {
	ID         uint           `json:"id"`
	UserID     string         `json:"user_id"`
	Items      []ItemResponse `json:"items"`
	TotalPrice float64        `json:"total_price"`
}

// CartPort is the cart API used by the HTTP layer.
type CartPort interface {
	Get(ctx context.Context, userID string) (*CartResponse, error)
	AddItem(ctx context.Context, userID string, req AddItemRequest) (*CartResponse, error)
	UpdateItem(ctx context.Context, userID string, itemID uint, quantity int) (*CartResponse, error)
	RemoveItem(ctx context.Context, userID string, itemID uint) (*CartResponse, error)
	Clear(ctx context.Context, userID string) error
}
