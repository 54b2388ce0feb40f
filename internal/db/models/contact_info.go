package models

import "time"

// ContactInfo holds the contact details shown on the public site.
// Like About it is a singleton table with the same upsert pattern.
type ContactInfo struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:100;not null" json:"phone"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	Linkedin  string    `gorm:"size:512" json:"linkedin"`
	Github    string    `gorm:"size:512" json:"github"`
	Twitter   string    `gorm:"size:512" json:"twitter"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName matches the source schema.
func (ContactInfo) TableName() string {
	return "contact_info"
}
