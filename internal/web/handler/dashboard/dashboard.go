// Package dashboard provides the admin landing page data: collection
// counts, the unread message total and a short list of recent messages.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/config"
	messagectl "github.com/andriwebdev/portfolio-admin/internal/db/controller/message"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/stats"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the path to the dashboard endpoint.
const Path = handler.AdminPath + "/dashboard"

// SectionsPath lists the admin sections for the shell's sidebar.
const SectionsPath = handler.AdminPath + "/sections"

// RecentMessageCount is how many messages the dashboard previews.
const RecentMessageCount = 5

// Service provides the dashboard endpoint.
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

	app.Get(Path, s.Overview)
	app.Get(SectionsPath, s.Sections)

	return nil
}

// Sections returns the admin sections in display order.
func (s *Service) Sections(c *fiber.Ctx) error {
	sections := make([]fiber.Map, 0, len(handler.Sections()))
	for _, section := range handler.Sections() {
		sections = append(sections, fiber.Map{
			"tag":   section.String(),
			"title": section.Title(),
		})
	}

	return c.JSON(fiber.Map{"sections": sections})
}

// Overview returns the collection counts, unread total and the five
// newest messages.
func (s *Service) Overview(c *fiber.Ctx) error {
	counts, err := stats.Collect(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to collect dashboard counts")

		return handler.InternalError(c, "Failed to load dashboard")
	}

	unread, err := messagectl.CountUnread(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")

		return handler.InternalError(c, "Failed to load dashboard")
	}

	recent, err := messagectl.Recent(s.db, RecentMessageCount)
	if err != nil {
		log.Error().Err(err).Msg("failed to load recent messages")

		return handler.InternalError(c, "Failed to load dashboard")
	}

	if recent == nil {
		recent = []models.Message{}
	}

	return c.JSON(fiber.Map{
		"counts":          counts,
		"unread":          unread,
		"recent_messages": recent,
	})
}
