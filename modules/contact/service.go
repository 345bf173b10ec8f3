package contact

import (
	"context"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"

	model "github.com/krisly/beauty-store/domain/contact"
	"github.com/krisly/beauty-store/events"
	"github.com/krisly/beauty-store/internal/validation"
	"github.com/krisly/beauty-store/modules/database"
)

// Service stores contact form submissions.
type Service struct {
	store    *database.Store
	eventBus mono.EventBus
	logger   types.Logger
}

var _ ContactPort = (*Service)(nil)

// NewService creates a contact service. eventBus may be nil.
func NewService(store *database.Store, eventBus mono.EventBus, logger types.Logger) *Service {
	return &Service{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Create validates and stores a submission.
func (s *Service) Create(ctx context.Context, req CreateMessageRequest) (*MessageResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	msg := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := NewRepository(s.store.Session(ctx)).Create(msg); err != nil {
		return nil, err
	}

	s.logger.Info("Contact message received", "id", msg.ID, "subject", msg.Subject)
	if s.eventBus != nil {
		err := events.ContactMessageReceivedV1.Publish(s.eventBus, events.ContactMessageReceivedEvent{
			MessageID:  msg.ID,
			Name:       msg.Name,
			Email:      msg.Email,
			Subject:    msg.Subject,
			ReceivedAt: msg.CreatedAt,
		}, nil)
		if err != nil {
			s.logger.Warn("Failed to publish event", "event", "ContactMessageReceived", "error", err)
		}
	}

	resp := toMessageResponse(msg)
	return &resp, nil
}

// List returns every stored message.
func (s *Service) List(ctx context.Context) ([]MessageResponse, error) {
	msgs, err := NewRepository(s.store.Session(ctx)).FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, toMessageResponse(&msgs[i]))
	}
	return out, nil
}

// Get returns a single message.
func (s *Service) Get(ctx context.Context, id uint) (*MessageResponse, error) {
	msg, err := NewRepository(s.store.Session(ctx)).FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toMessageResponse(msg)
	return &resp, nil
}

// Delete removes a message.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := NewRepository(s.store.Session(ctx)).Delete(id); err != nil {
		return err
	}
	s.logger.Info("Contact message deleted", "id", id)
	return nil
}
