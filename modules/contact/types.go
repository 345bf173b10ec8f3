package contact

import (
	"context"
	"time"

	model "github.com/krisly/beauty-store/domain/contact"
)

// CreateMessageRequest is a contact form submission. Every field is required.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Email   string `json:"email" validate:"required,notblank,email,max=255"`
	Subject string `json:"subject" validate:"required,notblank,max=255"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

// MessageResponse is the API representation of a stored message.
type MessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ContactPort is the contact API used by the HTTP layer.
type ContactPort interface {
	Create(ctx context.Context, req CreateMessageRequest) (*MessageResponse, error)
	List(ctx context.Context) ([]MessageResponse, error)
	Get(ctx context.Context, id uint) (*MessageResponse, error)
	Delete(ctx context.Context, id uint) error
}
