// Package apperr holds the error kinds shared by the store services.
//
// Services wrap these sentinels with context; the HTTP layer maps them to
// status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock is returned when a cart request asks for more
	// units than the product has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// NotFound wraps ErrNotFound with the name of the missing entity.
func NotFound(entity string) error {
	return &kindError{kind: ErrNotFound, msg: entity + " not found"}
}

// Invalid wraps ErrInvalidInput with a human readable reason.
func Invalid(reason string) error {
	return &kindError{kind: ErrInvalidInput, msg: reason}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
