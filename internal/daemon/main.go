// Package daemon wires the configured database, session storage, cache
// and media uploader together and runs the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/cache"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/db/dsn"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/media"
	"github.com/andriwebdev/portfolio-admin/internal/web"
	"github.com/andriwebdev/portfolio-admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start runs the web service until a shutdown signal arrives.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.About{},
		&models.Skill{},
		&models.Project{},
		&models.Client{},
		&models.ContactInfo{},
		&models.Message{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	session.Init(openSessionStorage(cfg))

	portfolioCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect cache")
	}

	uploader, err := media.New(cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init media storage")
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, portfolioCache, uploader),
	}
}

func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.Engine {
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg))
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg))
	default: // mysql
		return gormmysql.Open(dsn.Create(cfg))
	}
}

// openSessionStorage picks the fiber session storage matching the
// database engine. sqlite deployments keep sessions in memory, so a
// restart logs the admin out; that is acceptable for a single-user tool.
func openSessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.Engine {
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	case config.EngineSQLite:
		return sessionmemory.New()
	default: // mysql
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}
}
