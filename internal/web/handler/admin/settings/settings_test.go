package settings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/backup"
	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.About{},
		&models.Skill{},
		&models.Project{},
		&models.Client{},
		&models.ContactInfo{},
		&models.Message{},
	))

	return db
}

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	app := fiber.New()
	db := newTestDB(t)

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db, nil))

	return app, db
}

func TestExport(t *testing.T) {
	app, db := newTestService(t)

	require.NoError(t, db.Create(&models.Skill{Name: "Go", Level: 8, Category: "Backend"}).Error)
	require.NoError(t, db.Create(&models.Message{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}).Error)

	req := httptest.NewRequest(http.MethodGet, Path+"/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	disposition := resp.Header.Get(fiber.HeaderContentDisposition)
	wantName := fmt.Sprintf("portfolio-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, wantName)

	var doc backup.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	assert.Equal(t, backup.Version, doc.Version)
	assert.Len(t, doc.Skills, 1)
	assert.Len(t, doc.Messages, 1)
	assert.NotEmpty(t, doc.ExportedAt)

	// the export never mutates anything
	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestClear_RequiresConfirmation(t *testing.T) {
	app, db := newTestService(t)

	require.NoError(t, db.Create(&models.Skill{Name: "Go", Level: 8, Category: "Backend"}).Error)

	for _, body := range []string{`{}`, `{"confirm":false}`} {
		req := httptest.NewRequest(http.MethodPost, Path+"/clear", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "refused clear must not delete anything")
}

func TestClear_WipesCollectionsButKeepsSingletons(t *testing.T) {
	app, db := newTestService(t)

	require.NoError(t, db.Create(&models.About{Name: "Andri", Tagline: "Dev", Description: "Hi"}).Error)
	require.NoError(t, db.Create(&models.ContactInfo{Email: "a@example.com", Phone: "1", Location: "ID"}).Error)
	require.NoError(t, db.Create(&models.Skill{Name: "Go", Level: 8, Category: "Backend"}).Error)
	require.NoError(t, db.Create(&models.Project{Title: "Site", Description: "Portfolio"}).Error)
	require.NoError(t, db.Create(&models.Client{Name: "Jane", Company: "Acme", Testimonial: "Great"}).Error)
	require.NoError(t, db.Create(&models.Message{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}).Error)

	req := httptest.NewRequest(http.MethodPost, Path+"/clear", strings.NewReader(`{"confirm":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	counts := map[string]any{
		"skills":   &models.Skill{},
		"projects": &models.Project{},
		"clients":  &models.Client{},
		"messages": &models.Message{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 0, count, "%s should be empty", name)
	}

	// about and contact info survive a clear
	var aboutCount, contactCount int64
	require.NoError(t, db.Model(&models.About{}).Count(&aboutCount).Error)
	require.NoError(t, db.Model(&models.ContactInfo{}).Count(&contactCount).Error)
	assert.EqualValues(t, 1, aboutCount)
	assert.EqualValues(t, 1, contactCount)
}
