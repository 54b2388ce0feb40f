// Package login provides the admin login handler.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
	"github.com/andriwebdev/portfolio-admin/internal/web/session"
)

const (
	// Path is the path to the login endpoint.
	Path = handler.AdminPath + "/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	// login stays outside the auth middleware
	app.Post(Path, s.Post)

	return nil
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Post handles the login form submission.
// Wrong username and wrong password produce the same generic message;
// failed attempts never touch previously stored sessions.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(loginRequest)

	if err := c.BodyParser(req); err != nil {
		return invalidCredentials(c)
	}

	var dbUser models.User
	result := s.db.Where("username = ?", req.Username).First(&dbUser)
	if result.Error != nil {
		return invalidCredentials(c)
	}

	if !dbUser.Active {
		return invalidCredentials(c)
	}

	if !dbUser.VerifyPassword(req.Password) {
		return invalidCredentials(c)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return internalError(c)
	}

	userSession := &session.Data{
		User: dbUser,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return internalError(c)
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.JSON(fiber.Map{
		"username":   dbUser.Username,
		"expires_at": userSession.ExpiresAt.UnixMilli(),
	})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": ErrInvalidCredentials.Error(),
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": ErrInternalServerError.Error(),
	})
}
