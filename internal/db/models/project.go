package models

import "time"

// Project represents one portfolio project.
// TechStack is stored as a JSON array in a single column.
type Project struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"size:512" json:"image"`
	TechStack   []string  `gorm:"serializer:json" json:"tech_stack"`
	LiveURL     string    `gorm:"size:512" json:"live_url"`
	GithubURL   string    `gorm:"size:512" json:"github_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
