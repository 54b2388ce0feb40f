// Package skills provides the admin CRUD handlers for the skills section.
package skills

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	skillctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/skill"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the skills section.
const Path = handler.AdminPath + "/skills"

// Service provides CRUD operations for skills.
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

// List returns all skills ordered by category.
func (s *Service) List(c *fiber.Ctx) error {
	skills, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load skills")

		return handler.InternalError(c, "Failed to load skills")
	}

	return c.JSON(fiber.Map{"skills": skills})
}

type skillRequest struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"required,min=1,max=10"`
	Category string `json:"category" validate:"required"`
}

// Create inserts a skill and returns the reloaded collection.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(skillRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "name and category are required and level must be between 1 and 10")
	}

	if _, err := skillctl.Create(s.db, models.Skill{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	}); err != nil {
		log.Error().Err(err).Msg("failed to create skill")

		return handler.InternalError(c, "Failed to save skill")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	skills, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload skills")

		return handler.InternalError(c, "Failed to load skills")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"skills": skills})
}

// Update overwrites a skill and returns the reloaded collection.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid skill id")
	}

	req := new(skillRequest)
	if err = c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err = s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "name and category are required and level must be between 1 and 10")
	}

	err = skillctl.Update(s.db, id, models.Skill{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, skillctl.ErrNotFound) {
			return handler.NotFound(c, "skill not found")
		}

		log.Error().Err(err).Msg("failed to update skill")

		return handler.InternalError(c, "Failed to save skill")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	skills, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload skills")

		return handler.InternalError(c, "Failed to load skills")
	}

	return c.JSON(fiber.Map{"skills": skills})
}

// Delete removes a skill and returns the reloaded collection.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid skill id")
	}

	if err = skillctl.Delete(s.db, id); err != nil {
		if errors.Is(err, skillctl.ErrNotFound) {
			return handler.NotFound(c, "skill not found")
		}

		log.Error().Err(err).Msg("failed to delete skill")

		return handler.InternalError(c, "Failed to delete skill")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	skills, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload skills")

		return handler.InternalError(c, "Failed to load skills")
	}

	return c.JSON(fiber.Map{"skills": skills})
}

func (s *Service) load() ([]models.Skill, error) {
	skills, err := skillctl.List(s.db)
	if err != nil {
		return nil, err
	}

	if skills == nil {
		skills = []models.Skill{}
	}

	return skills, nil
}
