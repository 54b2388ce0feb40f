// Package skill provides CRUD operations for the skills collection.
package skill

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

var (
	// ErrNotFound is returned when a skill is not found.
	ErrNotFound = errors.New("skill not found")
	// ErrLevelOutOfRange is returned when the level is outside 1-10.
	ErrLevelOutOfRange = errors.New("skill level must be between 1 and 10")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all skills ordered by category.
func List(db *gorm.DB) ([]models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var skills []models.Skill
	result := db.Order("category ASC").Find(&skills)
	if result.Error != nil {
		return nil, result.Error
	}

	return skills, nil
}

// Create inserts a new skill after checking the level bounds.
func Create(db *gorm.DB, fields models.Skill) (*models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if fields.Level < models.SkillLevelMin || fields.Level > models.SkillLevelMax {
		return nil, ErrLevelOutOfRange
	}

	skill := models.Skill{
		Name:     fields.Name,
		Level:    fields.Level,
		Category: fields.Category,
	}

	if result := db.Create(&skill); result.Error != nil {
		return nil, result.Error
	}

	return &skill, nil
}

// Update overwrites an existing skill's fields by ID.
func Update(db *gorm.DB, id uint64, fields models.Skill) error {
	if db == nil {
		return ErrDBNil
	}

	if fields.Level < models.SkillLevelMin || fields.Level > models.SkillLevelMax {
		return ErrLevelOutOfRange
	}

	var skill models.Skill
	result := db.First(&skill, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	skill.Name = fields.Name
	skill.Level = fields.Level
	skill.Category = fields.Category

	return db.Save(&skill).Error
}

// Delete removes a skill by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Clear removes all skills. Used by the settings clear-all operation.
func Clear(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where("id > ?", 0).Delete(&models.Skill{}).Error
}
