// Package auth provides the session check middleware for the admin API.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/session"
)

// UserKey is the fiber.Locals key the authenticated user is stored under.
const UserKey = "user"

// New returns a middleware that rejects requests without a valid session.
// Reading the session purges it when expired, so an expired cookie can
// never pass validation on a later request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(session.CookieName)
		if sessionID == "" {
			return unauthorized(c)
		}

		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err != nil {
			return unauthorized(c)
		}

		c.Locals(UserKey, sessData.User)

		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by the middleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(UserKey).(models.User)

	return user, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
