// Package events declares the events store modules publish on the mono
// event bus.
package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ProductDeletedEvent is emitted after a product and its dependent rows are removed.
type ProductDeletedEvent struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	DeletedAt time.Time `json:"deleted_at"`
}

// ProductDeletedV1 is the typed event definition for product deletion.
// Subject: events.catalog.v1.product-deleted
var ProductDeletedV1 = helper.EventDefinition[ProductDeletedEvent](
	"catalog", "ProductDeleted", "v1",
)

// ReviewCreatedEvent is emitted after a review is stored and the product
// rating recomputed.
type ReviewCreatedEvent struct {
	ReviewID      uint      `json:"review_id"`
	ProductID     uint      `json:"product_id"`
	UserID        string    `json:"user_id"`
	Rating        int       `json:"rating"`
	ProductRating float64   `json:"product_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewCreatedV1 is the typed event definition for review creation.
// Subject: events.review.v1.review-created
var ReviewCreatedV1 = helper.EventDefinition[ReviewCreatedEvent](
	"review", "ReviewCreated", "v1",
)

// ReviewDeletedEvent is emitted after a review is removed.
type ReviewDeletedEvent struct {
	ReviewID      uint      `json:"review_id"`
	ProductID     uint      `json:"product_id"`
	ProductRating float64   `json:"product_rating"`
	DeletedAt     time.Time `json:"deleted_at"`
}

// ReviewDeletedV1 is the typed event definition for review deletion.
// Subject: events.review.v1.review-deleted
var ReviewDeletedV1 = helper.EventDefinition[ReviewDeletedEvent](
	"review", "ReviewDeleted", "v1",
)

// ContactMessageReceivedEvent is emitted when a contact form is submitted.
type ContactMessageReceivedEvent struct {
	MessageID  uint      `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	ReceivedAt time.Time `json:"received_at"`
}

// ContactMessageReceivedV1 is the typed event definition for contact messages.
// Subject: events.contact.v1.contact-message-received
var ContactMessageReceivedV1 = helper.EventDefinition[ContactMessageReceivedEvent](
	"contact", "ContactMessageReceived", "v1",
)
