// Package public provides the unauthenticated endpoints: the aggregated
// portfolio payload the site renders from, and the contact form.
package public

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	aboutctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/about"
	clientctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/client"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/contactinfo"
	messagectl "github.com/andriwebdev/portfolio-admin/internal/db/controller/message"
	projectctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/project"
	skillctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/skill"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// PortfolioPath serves the aggregated read-only payload.
const PortfolioPath = handler.APIPath + "/portfolio"

// ContactPath receives contact form submissions.
const ContactPath = handler.APIPath + "/contact"

// Service provides the public endpoints.
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

	app.Get(PortfolioPath, s.Portfolio)
	app.Post(ContactPath, s.Contact)

	return nil
}

type portfolioPayload struct {
	About       *models.About       `json:"about"`
	Skills      []models.Skill      `json:"skills"`
	Projects    []models.Project    `json:"projects"`
	Clients     []models.Client     `json:"clients"`
	ContactInfo *models.ContactInfo `json:"contact_info"`
}

// Portfolio returns every public collection in one response. The payload
// is cached; admin mutations invalidate the cache so the next read is
// fresh.
func (s *Service) Portfolio(c *fiber.Ctx) error {
	if cached := s.cache.Get(c.UserContext(), cache.PortfolioKey); cached != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		return c.Send(cached)
	}

	payload, err := s.assemble()
	if err != nil {
		log.Error().Err(err).Msg("failed to assemble portfolio payload")

		return handler.InternalError(c, "Failed to load portfolio")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal portfolio payload")

		return handler.InternalError(c, "Failed to load portfolio")
	}

	s.cache.Set(c.UserContext(), cache.PortfolioKey, body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(body)
}

func (s *Service) assemble() (*portfolioPayload, error) {
	payload := new(portfolioPayload)

	about, err := aboutctl.Get(s.db)
	if err != nil && !errors.Is(err, aboutctl.ErrNotFound) {
		return nil, err
	}
	payload.About = about

	info, err := contactinfo.Get(s.db)
	if err != nil && !errors.Is(err, contactinfo.ErrNotFound) {
		return nil, err
	}
	payload.ContactInfo = info

	if payload.Skills, err = skillctl.List(s.db); err != nil {
		return nil, err
	}

	if payload.Projects, err = projectctl.List(s.db); err != nil {
		return nil, err
	}

	if payload.Clients, err = clientctl.List(s.db); err != nil {
		return nil, err
	}

	if payload.Skills == nil {
		payload.Skills = []models.Skill{}
	}
	if payload.Projects == nil {
		payload.Projects = []models.Project{}
	}
	if payload.Clients == nil {
		payload.Clients = []models.Client{}
	}

	return payload, nil
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Contact stores a contact form submission as an unread message.
func (s *Service) Contact(c *fiber.Ctx) error {
	req := new(contactRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "name, a valid email, subject and message are required")
	}

	if _, err := messagectl.Create(s.db, models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return handler.InternalError(c, "Failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}
