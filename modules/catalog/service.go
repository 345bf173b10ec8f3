package catalog

import (
	"context"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"gorm.io/gorm"

	model "github.com/krisly/beauty-store/domain/catalog"
	"github.com/krisly/beauty-store/events"
	"github.com/krisly/beauty-store/internal/validation"
	"github.com/krisly/beauty-store/modules/database"
)

// Service implements the catalog operations.
type Service struct {
	store    *database.Store
	eventBus mono.EventBus
	logger   types.Logger
}

var _ CatalogPort = (*Service)(nil)

// NewService creates a catalog service. eventBus may be nil, in which case
// no events are published.
func NewService(store *database.Store, eventBus mono.EventBus, logger types.Logger) *Service {
	return &Service{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// List returns one page of products in id order.
func (s *Service) List(ctx context.Context, req ListProductsRequest) ([]ProductResponse, error) {
	skip := max(req.Skip, 0)
	limit := DefaultLimit
	if req.Limit != nil && *req.Limit >= 0 {
		limit = min(*req.Limit, MaxLimit)
	}
	if limit == 0 {
		return []ProductResponse{}, nil
	}

	products, err := NewRepository(s.store.Session(ctx)).FindPage(req.Category, skip, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Get returns a single product.
func (s *Service) Get(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := NewRepository(s.store.Session(ctx)).FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Featured returns up to limit products chosen by criteria. An empty
// criteria means CriteriaFeatured.
func (s *Service) Featured(ctx context.Context, criteria Criteria, limit int) ([]ProductResponse, error) {
	if criteria == "" {
		criteria = CriteriaFeatured
	}
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	limit = min(limit, MaxFeaturedLimit)

	products, err := NewRepository(s.store.Session(ctx)).FindTop(criteria, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	product := &model.Product{}
	applyRequest(product, req)
	if err := NewRepository(s.store.Session(ctx)).Create(product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created", "id", product.ID, "name", product.Name)
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update overwrites every field of an existing product.
func (s *Service) Update(ctx context.Context, id uint, req ProductRequest) (*ProductResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var product *model.Product
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		found, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		applyRequest(found, req)
		product = found
		return repo.Save(found)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", "id", product.ID)
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product and everything that references it.
func (s *Service) Delete(ctx context.Context, id uint) error {
	var name string
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		product, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		name = product.Name
		return repo.Delete(id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Product deleted", "id", id)
	s.publishDeleted(events.ProductDeletedEvent{
		ProductID: id,
		Name:      name,
		DeletedAt: time.Now(),
	})
	return nil
}

// Seed inserts products only when the catalog is empty and returns how many
// rows were written.
func (s *Service) Seed(ctx context.Context, products []ProductRequest) (int, error) {
	for _, req := range products {
		if err := validation.Struct(req); err != nil {
			return 0, err
		}
	}

	inserted := 0
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		count, err := repo.Count()
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, req := range products {
			product := &model.Product{}
			applyRequest(product, req)
			if err := repo.Create(product); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *Service) publishDeleted(evt events.ProductDeletedEvent) {
	if s.eventBus == nil {
		return
	}
	if err := events.ProductDeletedV1.Publish(s.eventBus, evt, nil); err != nil {
		s.logger.Warn("Failed to publish event", "event", "ProductDeleted", "error", err)
	}
}

func applyRequest(p *model.Product, req ProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Category = req.Category
	p.Image = req.Image
	p.Stock = req.Stock
	p.Rating = model.DefaultRating
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	p.SalesCount = req.SalesCount
	p.IsFeatured = req.IsFeatured
}

func toProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
