// Package backup assembles the full-portfolio export document and implements
// the destructive clear-all operation behind the admin settings section.
package backup

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/controller/about"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/client"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/contactinfo"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/message"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/project"
	"github.com/andriwebdev/portfolio-admin/internal/db/controller/skill"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

// Version is the fixed export format version.
const Version = "1.0"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Document is the export file layout: one array per collection plus
// the export timestamp and format version.
type Document struct {
	About       []models.About       `json:"about"`
	Skills      []models.Skill       `json:"skills"`
	Projects    []models.Project     `json:"projects"`
	Clients     []models.Client      `json:"clients"`
	ContactInfo []models.ContactInfo `json:"contact_info"`
	Messages    []models.Message     `json:"messages"`
	ExportedAt  string               `json:"exported_at"`
	Version     string               `json:"version"`
}

// Export reads all six collections and assembles the export document.
// The six reads are independent queries, not a snapshot: a concurrent
// write can be reflected in some arrays and not others.
func Export(db *gorm.DB, now time.Time) (*Document, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	doc := &Document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Version:    Version,
	}

	var err error

	if doc.About, err = about.List(db); err != nil {
		return nil, err
	}

	if doc.Skills, err = skill.List(db); err != nil {
		return nil, err
	}

	if doc.Projects, err = project.List(db); err != nil {
		return nil, err
	}

	if doc.Clients, err = client.List(db); err != nil {
		return nil, err
	}

	if doc.ContactInfo, err = contactinfo.List(db); err != nil {
		return nil, err
	}

	if doc.Messages, err = message.List(db); err != nil {
		return nil, err
	}

	// empty collections serialize as [] rather than null
	if doc.About == nil {
		doc.About = []models.About{}
	}
	if doc.Skills == nil {
		doc.Skills = []models.Skill{}
	}
	if doc.Projects == nil {
		doc.Projects = []models.Project{}
	}
	if doc.Clients == nil {
		doc.Clients = []models.Client{}
	}
	if doc.ContactInfo == nil {
		doc.ContactInfo = []models.ContactInfo{}
	}
	if doc.Messages == nil {
		doc.Messages = []models.Message{}
	}

	return doc, nil
}

// Filename returns the timestamped download name for an export taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("portfolio-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// ClearAll deletes every row from messages, projects, skills and clients.
// The about and contact_info singletons are left untouched; the source
// behaves the same way and that asymmetry is kept on purpose.
func ClearAll(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	if err := message.Clear(db); err != nil {
		return err
	}

	if err := project.Clear(db); err != nil {
		return err
	}

	if err := skill.Clear(db); err != nil {
		return err
	}

	return client.Clear(db)
}
