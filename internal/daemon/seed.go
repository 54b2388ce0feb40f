package daemon

import (
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

// Fallback credentials used when the config does not set any. They match
// the published demo account; real deployments override them.
const (
	defaultAdminUsername = "andri"
	defaultAdminPassword = "4ndr!4n"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed the admin account only when the user table is empty

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		return
	}

	username := cfg.Admin.Username
	if username == "" {
		username = defaultAdminUsername
	}

	password := cfg.Admin.Password
	if password == "" {
		password = defaultAdminPassword
	}

	db.Create(
		&models.User{
			Username: username,
			Password: models.HashPassword(password),
			Active:   true,
		},
	)
}
