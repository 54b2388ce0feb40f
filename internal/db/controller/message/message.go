// Package message provides operations for the contact messages collection.
package message

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

var (
	// ErrNotFound is returned when a message is not found.
	ErrNotFound = errors.New("message not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all messages, newest first.
func List(db *gorm.DB) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.Message
	result := db.Order("created_at DESC").Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// Recent retrieves the newest messages up to limit. Used by the dashboard.
func Recent(db *gorm.DB, limit int) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.Message
	result := db.Order("created_at DESC").Limit(limit).Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// Create inserts a new message. Only the public contact form calls this;
// the admin side never creates messages.
func Create(db *gorm.DB, fields models.Message) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	msg := models.Message{
		Name:    fields.Name,
		Email:   fields.Email,
		Subject: fields.Subject,
		Message: fields.Message,
	}

	if result := db.Create(&msg); result.Error != nil {
		return nil, result.Error
	}

	return &msg, nil
}

// ToggleRead flips the read flag of one message.
func ToggleRead(db *gorm.DB, id uint64) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var msg models.Message
	result := db.First(&msg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	msg.Read = !msg.Read
	if result = db.Save(&msg); result.Error != nil {
		return nil, result.Error
	}

	return &msg, nil
}

// unread is the structured condition for unread rows. It has to stay a
// map so gorm quotes the column per dialect: READ is a reserved word in
// MySQL and a raw "read = ?" string reaches the server unquoted.
func unread() map[string]any {
	return map[string]any{"read": false}
}

// MarkAllRead sets the read flag on every currently-unread message.
// Already-read messages are not touched.
func MarkAllRead(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Model(&models.Message{}).Where(unread()).Update("read", true).Error
}

// CountUnread returns the number of unread messages.
func CountUnread(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Message{}).Where(unread()).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Delete removes a message by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Clear removes all messages. Used by the settings clear-all operation.
func Clear(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where("id > ?", 0).Delete(&models.Message{}).Error
}

// Filter narrows messages by read state and a case-insensitive substring
// search across name, email, subject and message body. It is pure: no
// database round-trip happens here.
func Filter(messages []models.Message, term, readState string) []models.Message {
	filtered := messages

	switch readState {
	case "read":
		filtered = keep(filtered, func(m models.Message) bool { return m.Read })
	case "unread":
		filtered = keep(filtered, func(m models.Message) bool { return !m.Read })
	}

	if term == "" {
		return filtered
	}

	needle := strings.ToLower(term)

	return keep(filtered, func(m models.Message) bool {
		return strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.Email), needle) ||
			strings.Contains(strings.ToLower(m.Subject), needle) ||
			strings.Contains(strings.ToLower(m.Message), needle)
	})
}

func keep(messages []models.Message, match func(models.Message) bool) []models.Message {
	out := make([]models.Message, 0, len(messages))
	for _, m := range messages {
		if match(m) {
			out = append(out, m)
		}
	}

	return out
}
