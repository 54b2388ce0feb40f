// Package client provides CRUD operations for the client testimonials collection.
package client

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

var (
	// ErrNotFound is returned when a client testimonial is not found.
	ErrNotFound = errors.New("client not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all client testimonials, newest first.
func List(db *gorm.DB) ([]models.Client, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var clients []models.Client
	result := db.Order("created_at DESC").Find(&clients)
	if result.Error != nil {
		return nil, result.Error
	}

	return clients, nil
}

// Create inserts a new client testimonial.
func Create(db *gorm.DB, fields models.Client) (*models.Client, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	c := models.Client{
		Name:        fields.Name,
		Company:     fields.Company,
		Testimonial: fields.Testimonial,
		Photo:       fields.Photo,
	}

	if result := db.Create(&c); result.Error != nil {
		return nil, result.Error
	}

	return &c, nil
}

// Update overwrites an existing testimonial's fields by ID.
func Update(db *gorm.DB, id uint64, fields models.Client) error {
	if db == nil {
		return ErrDBNil
	}

	var c models.Client
	result := db.First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	c.Name = fields.Name
	c.Company = fields.Company
	c.Testimonial = fields.Testimonial
	c.Photo = fields.Photo

	return db.Save(&c).Error
}

// Delete removes a testimonial by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Clear removes all testimonials. Used by the settings clear-all operation.
func Clear(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where("id > ?", 0).Delete(&models.Client{}).Error
}
