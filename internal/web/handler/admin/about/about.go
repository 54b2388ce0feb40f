// Package about provides the admin handlers for the about profile section.
package about

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	aboutctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/about"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the about section.
const Path = handler.AdminPath + "/about"

// Service provides the about profile admin endpoints.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
	cache     *cache.Cache
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
	s.validator = validator.New()
	s.cache = c

	app.Get(Path, s.Get)
	app.Put(Path, s.Save)

	return nil
}

// Get returns the singleton profile, or null when nothing was saved yet.
func (s *Service) Get(c *fiber.Ctx) error {
	profile, err := aboutctl.Get(s.db)
	if err != nil {
		if errors.Is(err, aboutctl.ErrNotFound) {
			return c.JSON(fiber.Map{"about": nil})
		}

		log.Error().Err(err).Msg("failed to load about profile")

		return handler.InternalError(c, "Failed to load about profile")
	}

	return c.JSON(fiber.Map{"about": profile})
}

type saveRequest struct {
	Name        string `json:"name" validate:"required"`
	Tagline     string `json:"tagline" validate:"required"`
	Description string `json:"description" validate:"required"`
	Photo       string `json:"photo"`
	Resume      string `json:"resume"`
}

// Save upserts the profile: first save inserts, later saves update.
func (s *Service) Save(c *fiber.Ctx) error {
	req := new(saveRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "name, tagline and description are required")
	}

	profile, err := aboutctl.Set(s.db, models.About{
		Name:        req.Name,
		Tagline:     req.Tagline,
		Description: req.Description,
		Photo:       req.Photo,
		Resume:      req.Resume,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save about profile")

		return handler.InternalError(c, "Failed to save about profile")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	return c.JSON(fiber.Map{"about": profile})
}
