package models

import "time"

// Skill proficiency bounds.
const (
	SkillLevelMin = 1
	SkillLevelMax = 10
)

// Skill represents one skill entry with a 1-10 proficiency level,
// grouped by a free-form category label for display.
type Skill struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Level     int       `gorm:"not null" json:"level"`
	Category  string    `gorm:"size:100;not null" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// LevelLabel maps the numeric proficiency level to its display label.
func (s Skill) LevelLabel() string {
	switch {
	case s.Level <= 2:
		return "Beginner"
	case s.Level <= 4:
		return "Intermediate"
	case s.Level <= 6:
		return "Proficient"
	case s.Level <= 8:
		return "Advanced"
	default:
		return "Expert"
	}
}
