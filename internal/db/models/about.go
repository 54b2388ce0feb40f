// Package models contains database model definitions.
package models

import "time"

// About holds the profile shown in the hero and about sections.
// The table is a singleton: at most one row exists, created on first
// save and updated on every save after that.
type About struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Tagline     string    `gorm:"size:255;not null" json:"tagline"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Photo       string    `gorm:"size:512" json:"photo"`
	Resume      string    `gorm:"size:512" json:"resume"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the table name singular to match the source schema.
func (About) TableName() string {
	return "about"
}
