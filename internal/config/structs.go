package config

import (
	"time"

	"github.com/andriwebdev/portfolio-admin/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Admin holds the credentials the admin account is seeded from.
// The defaults are the published demo pair; override them in production.
type Admin struct {
	Username string
	Password string
}

// Cache holds the optional redis cache settings for the public API.
type Cache struct {
	Enabled  bool
	Addr     string
	Password string
	TTL      time.Duration
}

// Media holds the optional cloudinary settings for asset uploads.
type Media struct {
	Enabled   bool
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Admin     Admin
	Cache     Cache
	Media     Media
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}
