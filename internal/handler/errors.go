package handler

import (
	"errors"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps core error kinds to stable HTTP statuses.
// InsufficientStock and DuplicateKey are state conflicts, not bad input;
// StorageError is the one kind callers may retry verbatim.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrInsufficientStock), errors.Is(err, apperr.ErrDuplicateKey):
		return fiber.StatusConflict
	case errors.Is(err, apperr.ErrStorage):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if apperr.Retryable(err) {
		body["retryable"] = true
	}
	return c.Status(statusFor(err)).JSON(body)
}

// getUserID pulls the principal id set by the auth middleware
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}
