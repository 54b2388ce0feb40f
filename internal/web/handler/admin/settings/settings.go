// Package settings provides the admin data management endpoints: the full
// JSON export and the destructive clear-all operation.
package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/backup"
	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the settings section.
const Path = handler.AdminPath + "/settings"

// Service provides the export and clear-all endpoints.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	cache *cache.Cache
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, c *cache.Cache) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.cache = c

	app.Get(Path+"/export", s.Export)
	app.Post(Path+"/clear", s.Clear)

	return nil
}

// Export serializes every collection into one JSON document and serves it
// as a dated download. Exporting never changes any stored data.
func (s *Service) Export(c *fiber.Ctx) error {
	now := time.Now()

	doc, err := backup.Export(s.db, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to export portfolio data")

		return handler.InternalError(c, "Failed to export data")
	}

	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, backup.Filename(now)))

	return c.JSON(doc)
}

type clearRequest struct {
	Confirm bool `json:"confirm"`
}

// Clear wipes the messages, projects, skills and clients collections. The
// about profile and contact info survive. The caller has to send
// confirm=true; anything else is rejected before any row is touched.
func (s *Service) Clear(c *fiber.Ctx) error {
	req := new(clearRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if !req.Confirm {
		return handler.ValidationError(c, "clearing all data requires confirmation")
	}

	if err := backup.ClearAll(s.db); err != nil {
		log.Error().Err(err).Msg("failed to clear portfolio data")

		return handler.InternalError(c, "Failed to clear data")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	return c.JSON(fiber.Map{"ok": true})
}
