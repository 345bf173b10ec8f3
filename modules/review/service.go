package review

import (
	"context"
	"strings"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"gorm.io/gorm"

	model "github.com/krisly/beauty-store/domain/review"
	"github.com/krisly/beauty-store/events"
	"github.com/krisly/beauty-store/internal/validation"
	"github.com/krisly/beauty-store/modules/catalog"
	"github.com/krisly/beauty-store/modules/database"
)

// Service implements product reviews and keeps product ratings in sync.
type Service struct {
	store    *database.Store
	eventBus mono.EventBus
	logger   types.Logger
}

var _ ReviewPort = (*Service)(nil)

// NewService creates a review service. eventBus may be nil.
func NewService(store *database.Store, eventBus mono.EventBus, logger types.Logger) *Service {
	return &Service{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ListForProduct returns the reviews of a product in id order. An unknown
// product yields an empty list.
func (s *Service) ListForProduct(ctx context.Context, productID uint) ([]ReviewResponse, error) {
	reviews, err := NewRepository(s.store.Session(ctx)).FindByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out, nil
}

// Get returns a single review.
func (s *Service) Get(ctx context.Context, id uint) (*ReviewResponse, error) {
	r, err := NewRepository(s.store.Session(ctx)).FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toReviewResponse(r)
	return &resp, nil
}

// Create stores a review and sets the product rating to the mean of all its
// reviews in the same transaction.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*ReviewResponse, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = model.AnonymousUser
	}

	var (
		created       *model.Review
		productRating float64
	)
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := catalog.NewRepository(tx).FindByID(req.ProductID); err != nil {
			return err
		}
		if err := validation.Struct(req); err != nil {
			return err
		}

		repo := NewRepository(tx)
		created = &model.Review{
			ProductID: req.ProductID,
			UserID:    userID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := repo.Create(created); err != nil {
			return err
		}

		var err error
		productRating, err = repo.RecomputeRating(req.ProductID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Review created", "id", created.ID, "product_id", created.ProductID, "product_rating", productRating)
	s.publish(func(bus mono.EventBus) error {
		return events.ReviewCreatedV1.Publish(bus, events.ReviewCreatedEvent{
			ReviewID:      created.ID,
			ProductID:     created.ProductID,
			UserID:        created.UserID,
			Rating:        created.Rating,
			ProductRating: productRating,
			CreatedAt:     created.CreatedAt,
		}, nil)
	})

	resp := toReviewResponse(created)
	return &resp, nil
}

// Delete removes a review and recomputes the product rating, resetting it to
// the default when no reviews remain.
func (s *Service) Delete(ctx context.Context, id uint) error {
	var (
		productID     uint
		productRating float64
	)
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		r, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		productID = r.ProductID
		if err := repo.Delete(id); err != nil {
			return err
		}
		productRating, err = repo.RecomputeRating(productID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("Review deleted", "id", id, "product_id", productID, "product_rating", productRating)
	s.publish(func(bus mono.EventBus) error {
		return events.ReviewDeletedV1.Publish(bus, events.ReviewDeletedEvent{
			ReviewID:      id,
			ProductID:     productID,
			ProductRating: productRating,
			DeletedAt:     time.Now(),
		}, nil)
	})
	return nil
}

func (s *Service) publish(fn func(bus mono.EventBus) error) {
	if s.eventBus == nil {
		return
	}
	if err := fn(s.eventBus); err != nil {
		s.logger.Warn("Failed to publish review event", "error", err)
	}
}
