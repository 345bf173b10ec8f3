// Package notification keeps an in-memory inbox of store events for the
// shop staff: new contact messages, review activity and catalog removals.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"

	"github.com/krisly/beauty-store/events"
)

// DefaultCapacity is the number of notices retained.
const DefaultCapacity = 100

// Notice kinds.
const (
	KindContactMessage = "contact_message"
	KindReviewCreated  = "review_created"
	KindReviewDeleted  = "review_deleted"
	KindProductDeleted = "product_deleted"
)

// Notice is one inbox entry.
type Notice struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	SourceID  uint      `json:"source_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Module consumes store events and records them as notices.
type Module struct {
	mu       sync.RWMutex
	notices  []Notice
	capacity int
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates the notification module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		notices:  make([]Notice, 0),
		capacity: DefaultCapacity,
		logger:   logger.WithModule("notification"),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "notification"
}

// RegisterEventConsumers subscribes to the store events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.ContactMessageReceivedV1, m.handleContactMessage, m); err != nil {
		return fmt.Errorf("failed to register ContactMessageReceived consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ReviewCreatedV1, m.handleReviewCreated, m); err != nil {
		return fmt.Errorf("failed to register ReviewCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ReviewDeletedV1, m.handleReviewDeleted, m); err != nil {
		return fmt.Errorf("failed to register ReviewDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProductDeletedV1, m.handleProductDeleted, m); err != nil {
		return fmt.Errorf("failed to register ProductDeleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", "ContactMessageReceived, ReviewCreated, ReviewDeleted, ProductDeleted")
	return nil
}

func (m *Module) handleContactMessage(_ context.Context, event events.ContactMessageReceivedEvent, _ *mono.Msg) error {
	m.record(KindContactMessage, event.MessageID,
		fmt.Sprintf("New message from %s <%s>: %s", event.Name, event.Email, event.Subject))
	return nil
}

func (m *Module) handleReviewCreated(_ context.Context, event events.ReviewCreatedEvent, _ *mono.Msg) error {
	m.record(KindReviewCreated, event.ReviewID,
		fmt.Sprintf("Product %d received a %d star review from %s (rating now %.2f)",
			event.ProductID, event.Rating, event.UserID, event.ProductRating))
	return nil
}

func (m *Module) handleReviewDeleted(_ context.Context, event events.ReviewDeletedEvent, _ *mono.Msg) error {
	m.record(KindReviewDeleted, event.ReviewID,
		fmt.Sprintf("Review %d of product %d removed (rating now %.2f)",
			event.ReviewID, event.ProductID, event.ProductRating))
	return nil
}

func (m *Module) handleProductDeleted(_ context.Context, event events.ProductDeletedEvent, _ *mono.Msg) error {
	m.record(KindProductDeleted, event.ProductID,
		fmt.Sprintf("Product %q removed from the catalog", event.Name))
	return nil
}

func (m *Module) record(kind string, sourceID uint, message string) {
	notice := Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		SourceID:  sourceID,
		Timestamp: time.Now(),
	}

	m.mu.Lock()
	m.notices = append(m.notices, notice)
	if over := len(m.notices) - m.capacity; over > 0 {
		m.notices = append(m.notices[:0:0], m.notices[over:]...)
	}
	m.mu.Unlock()

	m.logger.Info("Notice recorded", "kind", kind, "source_id", sourceID, "message", message)
}

// Notices returns a copy of the retained notices, oldest first.
func (m *Module) Notices() []Notice {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Notice, len(m.notices))
	copy(result, m.notices)
	return result
}

// Health reports the inbox size.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"notices": len(m.notices)},
	}
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("Notification module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Notification module stopped")
	return nil
}
