// Package stats aggregates the per-collection counts for the dashboard.
package stats

import (
	"errors"

	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Counts holds the size of each portfolio collection.
type Counts struct {
	Skills   int64 `json:"skills"`
	Projects int64 `json:"projects"`
	Clients  int64 `json:"clients"`
	Messages int64 `json:"messages"`
}

// Collect counts every collection in one pass.
func Collect(db *gorm.DB) (*Counts, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	counts := new(Counts)

	for _, c := range []struct {
		model any
		dest  *int64
	}{
		{&models.Skill{}, &counts.Skills},
		{&models.Project{}, &counts.Projects},
		{&models.Client{}, &counts.Clients},
		{&models.Message{}, &counts.Messages},
	} {
		if result := db.Model(c.model).Count(c.dest); result.Error != nil {
			return nil, result.Error
		}
	}

	return counts, nil
}
