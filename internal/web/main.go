package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	fiberlogger "github.com/andriwebdev/portfolio-admin/internal/logger/adapter/fiber"
	"github.com/andriwebdev/portfolio-admin/internal/media"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler"
	aboutadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/about"
	clientsadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/clients"
	contactadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/contact"
	messagesadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/messages"
	projectsadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/projects"
	settingsadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/settings"
	skillsadmin "github.com/andriwebdev/portfolio-admin/internal/web/handler/admin/skills"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler/dashboard"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler/login"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler/logout"
	mediahandler "github.com/andriwebdev/portfolio-admin/internal/web/handler/media"
	"github.com/andriwebdev/portfolio-admin/internal/web/handler/public"
	"github.com/andriwebdev/portfolio-admin/internal/web/middleware/auth"
)

// CheckAlivePath is probed by load balancers; it flips to 503 during the
// graceful shutdown window.
const CheckAlivePath = "/checkalive"

// MetricsPath exposes the prometheus registry.
const MetricsPath = "/metrics"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	cache        *cache.Cache
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM, then shuts the server down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		if err = s.cache.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close cache connection")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration. cache and
// uploader may be nil when those integrations are not configured.
func New(cfg *config.Config, db *gorm.DB, c *cache.Cache, uploader media.Uploader) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	service := &Service{
		cfg:   cfg,
		App:   app,
		db:    db,
		cache: c,
	}
	service.alive.Store(true)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Get(CheckAlivePath, func(ctx *fiber.Ctx) error {
		if !service.alive.Load() {
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}

		return ctx.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// point clients hitting the bare host at the public API
	app.Get(handler.RootPath, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(public.PortfolioPath)
	})

	// public endpoints and the session entry/exit points register before
	// the auth middleware, everything admin-facing after it
	mustInit(public.Handler.Init(app, cfg, db, c))
	mustInit(login.Handler.Init(app, cfg, db))
	mustInit(logout.Handler.Init(app, cfg))

	app.Use(handler.AdminPath, auth.New())

	mustInit(dashboard.Handler.Init(app, cfg, db))
	mustInit(aboutadmin.Handler.Init(app, cfg, db, c))
	mustInit(skillsadmin.Handler.Init(app, cfg, db, c))
	mustInit(projectsadmin.Handler.Init(app, cfg, db, c))
	mustInit(clientsadmin.Handler.Init(app, cfg, db, c))
	mustInit(contactadmin.Handler.Init(app, cfg, db, c))
	mustInit(messagesadmin.Handler.Init(app, cfg, db))
	mustInit(settingsadmin.Handler.Init(app, cfg, db, c))
	mustInit(mediahandler.Handler.Init(app, cfg, uploader))

	return service
}

func mustInit(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize handler")
	}
}
