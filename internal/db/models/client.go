package models

import "time"

// Client represents one client testimonial.
type Client struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Company     string    `gorm:"size:255;not null" json:"company"`
	Testimonial string    `gorm:"type:text;not null" json:"testimonial"`
	Photo       string    `gorm:"size:512" json:"photo"`
	CreatedAt   time.Time `json:"created_at"`
}
