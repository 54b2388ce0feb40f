// Package project provides CRUD operations for the projects collection.
package project

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

var (
	// ErrNotFound is returned when a project is not found.
	ErrNotFound = errors.New("project not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all projects, featured first, newest first within each group.
func List(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	result := db.Order("featured DESC").Order("created_at DESC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

// Create inserts a new project.
func Create(db *gorm.DB, fields models.Project) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	project := models.Project{
		Title:       fields.Title,
		Description: fields.Description,
		Image:       fields.Image,
		TechStack:   fields.TechStack,
		LiveURL:     fields.LiveURL,
		GithubURL:   fields.GithubURL,
		Featured:    fields.Featured,
	}

	if result := db.Create(&project); result.Error != nil {
		return nil, result.Error
	}

	return &project, nil
}

// Update overwrites an existing project's fields by ID.
func Update(db *gorm.DB, id uint64, fields models.Project) error {
	if db == nil {
		return ErrDBNil
	}

	var project models.Project
	result := db.First(&project, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	project.Title = fields.Title
	project.Description = fields.Description
	project.Image = fields.Image
	project.TechStack = fields.TechStack
	project.LiveURL = fields.LiveURL
	project.GithubURL = fields.GithubURL
	project.Featured = fields.Featured

	return db.Save(&project).Error
}

// Delete removes a project by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Clear removes all projects. Used by the settings clear-all operation.
func Clear(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where("id > ?", 0).Delete(&models.Project{}).Error
}
