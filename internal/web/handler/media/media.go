// Package media provides the admin asset upload endpoint. Uploaded files
// land in cloudinary; the returned URL goes into the photo, resume or
// image field of whichever section the admin is editing.
package media

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/media"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
)

// Path is the path to the upload endpoint.
const Path = handler.AdminPath + "/media"

// Service provides the upload endpoint.
type Service struct {
	handler.Service
	cfg      *config.Config
	uploader media.Uploader
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes. uploader may be nil when media storage is not
// configured; uploads then fail with a clear message instead of a panic.
func (s *Service) Init(app *fiber.App, cfg *config.Config, uploader media.Uploader) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.uploader = uploader

	app.Post(Path, s.Upload)

	return nil
}

// Upload stores the multipart "file" field and returns its public URL.
func (s *Service) Upload(c *fiber.Ctx) error {
	if s.uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "media storage is not configured",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handler.ValidationError(c, "a multipart file field named 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")

		return handler.InternalError(c, "Failed to upload file")
	}
	defer file.Close()

	url, err := s.uploader.Upload(c.UserContext(), file, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to media storage")

		return handler.InternalError(c, "Failed to upload file")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
