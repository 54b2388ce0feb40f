package handler

import (
	"github.com/gofiber/fiber/v2"
)

// ValidationError responds with 422 and a user-visible message.
// Validation happens before any database call, so the collection is
// untouched when this is returned.
func ValidationError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": msg,
	})
}

// NotFound responds with 404 and a user-visible message.
func NotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": msg,
	})
}

// InternalError responds with 500 and a generic user-visible message.
// The in-memory and database state stay at their last good snapshot; the
// client shows the message and returns to its ready state.
func InternalError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

// ParseID reads the :id route parameter as an unsigned integer.
func ParseID(c *fiber.Ctx) (uint64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}

	return uint64(id), nil
}
