// Package contactinfo provides persistence operations for the singleton contact details.
package contactinfo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

var (
	// ErrNotFound is returned when no contact info has been saved yet.
	ErrNotFound = errors.New("contact info not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the singleton contact info row.
func Get(db *gorm.DB) (*models.ContactInfo, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var info models.ContactInfo
	result := db.First(&info)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &info, nil
}

// List retrieves all contact info rows for the export.
func List(db *gorm.DB) ([]models.ContactInfo, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.ContactInfo
	if result := db.Find(&rows); result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Set creates or updates the singleton contact info row.
// Same non-atomic upsert as the about profile.
func Set(db *gorm.DB, fields models.ContactInfo) (*models.ContactInfo, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.ContactInfo
	result := db.First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		info := models.ContactInfo{
			Email:    fields.Email,
			Phone:    fields.Phone,
			Location: fields.Location,
			Linkedin: fields.Linkedin,
			Github:   fields.Github,
			Twitter:  fields.Twitter,
		}

		if result = db.Create(&info); result.Error != nil {
			return nil, result.Error
		}

		return &info, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	existing.Email = fields.Email
	existing.Phone = fields.Phone
	existing.Location = fields.Location
	existing.Linkedin = fields.Linkedin
	existing.Github = fields.Github
	existing.Twitter = fields.Twitter

	if result = db.Save(&existing); result.Error != nil {
		return nil, result.Error
	}

	return &existing, nil
}
