// Package about provides persistence operations for the singleton about profile.
package about

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

var (
	// ErrNotFound is returned when no about profile has been saved yet.
	ErrNotFound = errors.New("about profile not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the singleton about profile.
func Get(db *gorm.DB) (*models.About, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var about models.About
	result := db.First(&about)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &about, nil
}

// List retrieves all about rows. Used by the export; a healthy table has
// zero or one row, but duplicates from the upsert race are returned as-is.
func List(db *gorm.DB) ([]models.About, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.About
	if result := db.Find(&rows); result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Set creates or updates the singleton about profile.
// The query-then-write sequence is not atomic: two concurrent saves can
// both miss the existing row and each insert one.
func Set(db *gorm.DB, fields models.About) (*models.About, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.About
	result := db.First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		about := models.About{
			Name:        fields.Name,
			Tagline:     fields.Tagline,
			Description: fields.Description,
			Photo:       fields.Photo,
			Resume:      fields.Resume,
		}

		if result = db.Create(&about); result.Error != nil {
			return nil, result.Error
		}

		return &about, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	existing.Name = fields.Name
	existing.Tagline = fields.Tagline
	existing.Description = fields.Description
	existing.Photo = fields.Photo
	existing.Resume = fields.Resume

	if result = db.Save(&existing); result.Error != nil {
		return nil, result.Error
	}

	return &existing, nil
}
