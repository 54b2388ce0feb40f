package project

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Project{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreateAndList(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, models.Project{
		Title:       "Demo",
		Description: "Desc",
		TechStack:   []string{"React", "Node"},
		Featured:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	projects, err := List(db)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	// the stored tech stack round-trips through the json serializer
	assert.Equal(t, []string{"React", "Node"}, projects[0].TechStack)
	assert.Equal(t, "Demo", projects[0].Title)
	assert.True(t, projects[0].Featured)
}

func TestListFeaturedFirstThenNewest(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now().UTC()
	seed := []models.Project{
		{Title: "plain-old", Description: "d", CreatedAt: now.Add(-3 * time.Hour)},
		{Title: "featured-old", Description: "d", Featured: true, CreatedAt: now.Add(-2 * time.Hour)},
		{Title: "plain-new", Description: "d", CreatedAt: now},
		{Title: "featured-new", Description: "d", Featured: true, CreatedAt: now.Add(-time.Hour)},
	}
	for _, p := range seed {
		require.NoError(t, db.Create(&p).Error)
	}

	projects, err := List(db)
	require.NoError(t, err)
	require.Len(t, projects, 4)

	assert.Equal(t, "featured-new", projects[0].Title)
	assert.Equal(t, "featured-old", projects[1].Title)
	assert.Equal(t, "plain-new", projects[2].Title)
	assert.Equal(t, "plain-old", projects[3].Title)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, models.Project{
		Title:       "Demo",
		Description: "Desc",
		TechStack:   []string{"React"},
	})
	require.NoError(t, err)

	err = Update(db, created.ID, models.Project{
		Title:       "Demo v2",
		Description: "Desc v2",
		TechStack:   []string{"React", "Node"},
		LiveURL:     "https://demo.example.com",
		Featured:    true,
	})
	require.NoError(t, err)

	projects, err := List(db)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Demo v2", projects[0].Title)
	assert.Equal(t, []string{"React", "Node"}, projects[0].TechStack)
	assert.True(t, projects[0].Featured)

	require.ErrorIs(t, Update(db, created.ID+99, models.Project{Title: "x", Description: "y"}), ErrNotFound)
}

func TestDeleteAndClear(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, models.Project{Title: "Demo", Description: "Desc"})
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))
	require.ErrorIs(t, Delete(db, created.ID), ErrNotFound)

	_, err = Create(db, models.Project{Title: "A", Description: "d"})
	require.NoError(t, err)
	_, err = Create(db, models.Project{Title: "B", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, Clear(db))

	projects, err := List(db)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
