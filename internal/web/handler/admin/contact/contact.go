// Package contact provides the admin handlers for the contact info section.
package contact

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/contactinfo"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the contact info section.
const Path = handler.AdminPath + "/contact"

// Service provides the contact info admin endpoints.
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

// Get returns the singleton contact info, or null when nothing was saved yet.
func (s *Service) Get(c *fiber.Ctx) error {
	info, err := contactinfo.Get(s.db)
	if err != nil {
		if errors.Is(err, contactinfo.ErrNotFound) {
			return c.JSON(fiber.Map{"contact_info": nil})
		}

		log.Error().Err(err).Msg("failed to load contact info")

		return handler.InternalError(c, "Failed to load contact info")
	}

	return c.JSON(fiber.Map{"contact_info": info})
}

type saveRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Twitter  string `json:"twitter"`
}

// Save upserts the contact info row, same pattern as the about profile.
func (s *Service) Save(c *fiber.Ctx) error {
	req := new(saveRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "email, phone and location are required")
	}

	info, err := contactinfo.Set(s.db, models.ContactInfo{
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Linkedin: req.Linkedin,
		Github:   req.Github,
		Twitter:  req.Twitter,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save contact info")

		return handler.InternalError(c, "Failed to save contact info")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	return c.JSON(fiber.Map{"contact_info": info})
}
