// Package messages provides the admin handlers for the contact messages inbox.
package messages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/config"
	messagectl "github.com/andriwebdev/portfolio-admin/internal/db/controller/message"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the messages section.
const Path = handler.AdminPath + "/messages"

// Service provides the message inbox admin endpoints. Messages arrive
// through the public contact form only; the admin side reads, flags and
// deletes them.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Put(Path+"/read-all", s.ReadAll)
	app.Put(Path+"/:id/read", s.ToggleRead)
	app.Delete(Path+"/:id", s.Delete)

	return nil
}

// List returns messages newest first, with the total unread count.
// Optional query parameters narrow the result: ?search matches a
// case-insensitive substring of name, email, subject or body, and
// ?read=read|unread keeps only one read state. The unread count always
// covers the whole inbox, not the filtered view.
func (s *Service) List(c *fiber.Ctx) error {
	messages, err := messagectl.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load messages")

		return handler.InternalError(c, "Failed to load messages")
	}

	unread, err := messagectl.CountUnread(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")

		return handler.InternalError(c, "Failed to load messages")
	}

	messages = messagectl.Filter(messages, c.Query("search"), c.Query("read"))
	if messages == nil {
		messages = []models.Message{}
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"unread":   unread,
	})
}

// ToggleRead flips the read flag of one message and returns it.
func (s *Service) ToggleRead(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid message id")
	}

	msg, err := messagectl.ToggleRead(s.db, id)
	if err != nil {
		if errors.Is(err, messagectl.ErrNotFound) {
			return handler.NotFound(c, "message not found")
		}

		log.Error().Err(err).Msg("failed to toggle message read flag")

		return handler.InternalError(c, "Failed to update message")
	}

	return c.JSON(fiber.Map{"message": msg})
}

// ReadAll marks every unread message as read.
func (s *Service) ReadAll(c *fiber.Ctx) error {
	if err := messagectl.MarkAllRead(s.db); err != nil {
		log.Error().Err(err).Msg("failed to mark all messages read")

		return handler.InternalError(c, "Failed to update messages")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// Delete removes one message.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid message id")
	}

	if err = messagectl.Delete(s.db, id); err != nil {
		if errors.Is(err, messagectl.ErrNotFound) {
			return handler.NotFound(c, "message not found")
		}

		log.Error().Err(err).Msg("failed to delete message")

		return handler.InternalError(c, "Failed to delete message")
	}

	return c.JSON(fiber.Map{"ok": true})
}
