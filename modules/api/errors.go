package api

import (
	"errors"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"

	"github.com/krisly/beauty-store/internal/apperr"
)

// Error codes returned in ErrorResponse.Error.
const (
	CodeNotFound          = "not_found"
	CodeInvalidInput      = "invalid_input"
	CodeInsufficientStock = "insufficient_stock"
	CodeInternal          = "internal_error"
)

// respondError maps a service error to its HTTP status and JSON body.
// Unclassified errors are logged and reported without detail.
func respondError(c *fiber.Ctx, logger types.Logger, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: CodeNotFound, Message: err.Error()})
	case errors.Is(err, apperr.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: CodeInsufficientStock, Message: err.Error()})
	case errors.Is(err, apperr.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: CodeInvalidInput, Message: err.Error()})
	}

	logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   CodeInternal,
		Message: "internal server error",
	})
}

func invalidInput(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: CodeInvalidInput, Message: message})
}

// errorHandler handles errors returned from Fiber routes and middleware.
func errorHandler(logger types.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return respondError(c, logger, err)
		}

		code := CodeInternal
		switch {
		case fe.Code == fiber.StatusNotFound:
			code = CodeNotFound
		case fe.Code < fiber.StatusInternalServerError:
			code = CodeInvalidInput
		}
		return c.Status(fe.Code).JSON(ErrorResponse{Error: code, Message: fe.Message})
	}
}
