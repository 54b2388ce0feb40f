// Package clients provides the admin CRUD handlers for the client testimonials section.
package clients

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	clientctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/client"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the clients section.
const Path = handler.AdminPath + "/clients"

// Service provides CRUD operations for client testimonials.
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

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)

	return nil
}

// List returns all client testimonials, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	clients, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load clients")

		return handler.InternalError(c, "Failed to load clients")
	}

	return c.JSON(fiber.Map{"clients": clients})
}

type clientRequest struct {
	Name        string `json:"name" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Testimonial string `json:"testimonial" validate:"required"`
	Photo       string `json:"photo"`
}

// Create inserts a testimonial and returns the reloaded collection.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(clientRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "name, company and testimonial are required")
	}

	if _, err := clientctl.Create(s.db, models.Client{
		Name:        req.Name,
		Company:     req.Company,
		Testimonial: req.Testimonial,
		Photo:       req.Photo,
	}); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		return handler.InternalError(c, "Failed to save client")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	clients, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload clients")

		return handler.InternalError(c, "Failed to load clients")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"clients": clients})
}

// Update overwrites a testimonial and returns the reloaded collection.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid client id")
	}

	req := new(clientRequest)
	if err = c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err = s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "name, company and testimonial are required")
	}

	err = clientctl.Update(s.db, id, models.Client{
		Name:        req.Name,
		Company:     req.Company,
		Testimonial: req.Testimonial,
		Photo:       req.Photo,
	})
	if err != nil {
		if errors.Is(err, clientctl.ErrNotFound) {
			return handler.NotFound(c, "client not found")
		}

		log.Error().Err(err).Msg("failed to update client")

		return handler.InternalError(c, "Failed to save client")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	clients, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload clients")

		return handler.InternalError(c, "Failed to load clients")
	}

	return c.JSON(fiber.Map{"clients": clients})
}

// Delete removes a testimonial and returns the reloaded collection.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid client id")
	}

	if err = clientctl.Delete(s.db, id); err != nil {
		if errors.Is(err, clientctl.ErrNotFound) {
			return handler.NotFound(c, "client not found")
		}

		log.Error().Err(err).Msg("failed to delete client")

		return handler.InternalError(c, "Failed to delete client")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	clients, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload clients")

		return handler.InternalError(c, "Failed to load clients")
	}

	return c.JSON(fiber.Map{"clients": clients})
}

func (s *Service) load() ([]models.Client, error) {
	clients, err := clientctl.List(s.db)
	if err != nil {
		return nil, err
	}

	if clients == nil {
		clients = []models.Client{}
	}

	return clients, nil
}
