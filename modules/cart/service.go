package cart

import (
	"context"
	"strings"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "github.com/krisly/beauty-store/domain/cart"
	"github.com/krisly/beauty-store/internal/apperr"
	"github.com/krisly/beauty-store/internal/validation"
	"github.com/krisly/beauty-store/modules/catalog"
	"github.com/krisly/beauty-store/modules/database"
)

// Service implements per-user carts.
type Service struct {
	store  *database.Store
	logger types.Logger
}

var _ CartPort = (*Service)(nil)

// NewService creates a cart service.
func NewService(store *database.Store, logger types.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the cart of userID, creating it on first access.
func (s *Service) Get(ctx context.Context, userID string) (*CartResponse, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}

	var resp *CartResponse
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		c, err := repo.GetOrCreate(userID)
		if err != nil {
			return err
		}
		resp, err = load(repo, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AddItem puts quantity units of a product into the cart, merging with an
// existing line for the same product. Stock is checked against the requested
// quantity only and is never decremented.
func (s *Service) AddItem(ctx context.Context, userID string, req AddItemRequest) (*CartResponse, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	var resp *CartResponse
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		product, err := catalog.NewRepository(tx).FindByID(req.ProductID)
		if err != nil {
			return err
		}
		if product.Stock < quantity {
			return apperr.ErrInsufficientStock
		}

		repo := NewRepository(tx)
		c, err := repo.GetOrCreate(userID)
		if err != nil {
			return err
		}
		if err := repo.AddQuantity(c.ID, product.ID, quantity); err != nil {
			return err
		}
		resp, err = load(repo, c)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Cart item added", "user_id", userID, "product_id", req.ProductID, "quantity", quantity)
	return resp, nil
}

// UpdateItem sets the quantity of one line. A quantity of zero or less
// removes the line.
func (s *Service) UpdateItem(ctx context.Context, userID string, itemID uint, quantity int) (*CartResponse, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}

	var resp *CartResponse
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		c, err := repo.GetOrCreate(userID)
		if err != nil {
			return err
		}
		item, err := repo.FindItem(c.ID, itemID)
		if err != nil {
			return err
		}
		if quantity <= 0 {
			err = repo.DeleteItem(c.ID, item.ID)
		} else {
			err = repo.SetQuantity(item.ID, quantity)
		}
		if err != nil {
			return err
		}
		resp, err = load(repo, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RemoveItem deletes one line from the cart.
func (s *Service) RemoveItem(ctx context.Context, userID string, itemID uint) (*CartResponse, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}

	var resp *CartResponse
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		c, err := repo.GetOrCreate(userID)
		if err != nil {
			return err
		}
		if err := repo.DeleteItem(c.ID, itemID); err != nil {
			return err
		}
		resp, err = load(repo, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Clear removes every line from the cart. Clearing an empty cart succeeds.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := checkUserID(userID); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		c, err := repo.GetOrCreate(userID)
		if err != nil {
			return err
		}
		return repo.DeleteAll(c.ID)
	})
}

func checkUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Invalid("user_id is required")
	}
	return nil
}

func load(repo *Repository, c *model.Cart) (*CartResponse, error) {
	items, err := repo.Items(c.ID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, items), nil
}

func toCartResponse(c *model.Cart, items []model.Item) *CartResponse {
	resp := &CartResponse{
		ID:     c.ID,
		UserID: c.UserID,
		Items:  make([]ItemResponse, 0, len(items)),
	}
	for i := range items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:        items[i].ID,
			ProductID: items[i].ProductID,
			Quantity:  items[i].Quantity,
			Product:   catalog.ToProductResponse(&items[i].Product),
		})
	}
	resp.TotalPrice = Total(items)
	return resp
}

// Total returns the sum of quantity times unit price over items.
func Total(items []model.Item) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	total, _ := sum.Float64()
	return total
}
