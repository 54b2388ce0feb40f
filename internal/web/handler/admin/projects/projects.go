// Package projects provides the admin CRUD handlers for the projects section.
package projects

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	projectctl "github.com/andriwebdev/portfolio-admin/internal/db/controller/project"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the base path for the projects section.
const Path = handler.AdminPath + "/projects"

// Service provides CRUD operations for projects.
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

// List returns all projects, featured first, newest first within each group.
func (s *Service) List(c *fiber.Ctx) error {
	projects, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load projects")

		return handler.InternalError(c, "Failed to load projects")
	}

	return c.JSON(fiber.Map{"projects": projects})
}

type projectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
	TechStack   string `json:"tech_stack"`
	LiveURL     string `json:"live_url"`
	GithubURL   string `json:"github_url"`
	Featured    bool   `json:"featured"`
}

func (r *projectRequest) model() models.Project {
	return models.Project{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		TechStack:   splitTechStack(r.TechStack),
		LiveURL:     r.LiveURL,
		GithubURL:   r.GithubURL,
		Featured:    r.Featured,
	}
}

// Create inserts a project and returns the reloaded collection.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(projectRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "title and description are required")
	}

	if _, err := projectctl.Create(s.db, req.model()); err != nil {
		log.Error().Err(err).Msg("failed to create project")

		return handler.InternalError(c, "Failed to save project")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	projects, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload projects")

		return handler.InternalError(c, "Failed to load projects")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"projects": projects})
}

// Update overwrites a project and returns the reloaded collection.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid project id")
	}

	req := new(projectRequest)
	if err = c.BodyParser(req); err != nil {
		return handler.ValidationError(c, "invalid request body")
	}

	if err = s.validator.Struct(req); err != nil {
		return handler.ValidationError(c, "title and description are required")
	}

	if err = projectctl.Update(s.db, id, req.model()); err != nil {
		if errors.Is(err, projectctl.ErrNotFound) {
			return handler.NotFound(c, "project not found")
		}

		log.Error().Err(err).Msg("failed to update project")

		return handler.InternalError(c, "Failed to save project")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	projects, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload projects")

		return handler.InternalError(c, "Failed to load projects")
	}

	return c.JSON(fiber.Map{"projects": projects})
}

// Delete removes a project and returns the reloaded collection.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.ValidationError(c, "invalid project id")
	}

	if err = projectctl.Delete(s.db, id); err != nil {
		if errors.Is(err, projectctl.ErrNotFound) {
			return handler.NotFound(c, "project not found")
		}

		log.Error().Err(err).Msg("failed to delete project")

		return handler.InternalError(c, "Failed to delete project")
	}

	s.cache.Invalidate(c.UserContext(), cache.PortfolioKey)

	projects, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to reload projects")

		return handler.InternalError(c, "Failed to load projects")
	}

	return c.JSON(fiber.Map{"projects": projects})
}

func (s *Service) load() ([]models.Project, error) {
	projects, err := projectctl.List(s.db)
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// splitTechStack turns the comma separated form value into a clean list.
// "React, Node" becomes ["React", "Node"]; empty entries are dropped.
func splitTechStack(raw string) []string {
	stack := []string{}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		stack = append(stack, entry)
	}

	return stack
}
