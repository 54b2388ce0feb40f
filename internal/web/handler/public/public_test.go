package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andriwebdev/portfolio-admin/internal/config"
	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db, nil))

	return app, db
}

func TestPortfolio_EmptyDatabase(t *testing.T) {
	app, _ := newTestService(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, PortfolioPath, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// singletons are null, collections are empty arrays
	assert.Equal(t, "null", string(body["about"]))
	assert.Equal(t, "null", string(body["contact_info"]))
	assert.Equal(t, "[]", string(body["skills"]))
	assert.Equal(t, "[]", string(body["projects"]))
	assert.Equal(t, "[]", string(body["clients"]))
}

func TestPortfolio_AggregatesAllSections(t *testing.T) {
	app, db := newTestService(t)

	require.NoError(t, db.Create(&models.About{Name: "Andri", Tagline: "Dev", Description: "Hi"}).Error)
	require.NoError(t, db.Create(&models.Skill{Name: "Go", Level: 8, Category: "Backend"}).Error)
	require.NoError(t, db.Create(&models.Project{Title: "Site", Description: "Portfolio", Featured: true}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, PortfolioPath, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body portfolioPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.NotNil(t, body.About)
	assert.Equal(t, "Andri", body.About.Name)
	assert.Nil(t, body.ContactInfo)
	require.Len(t, body.Skills, 1)
	require.Len(t, body.Projects, 1)
	assert.True(t, body.Projects[0].Featured)
}

func TestContact_StoresUnreadMessage(t *testing.T) {
	app, db := newTestService(t)

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, ContactPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored models.Message
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Jane", stored.Name)
	assert.False(t, stored.Read, "new messages arrive unread")
}

func TestContact_RejectsInvalidSubmissions(t *testing.T) {
	app, db := newTestService(t)

	tests := []struct {
		name string
		body string
	}{
		{"Test missing name", `{"email":"jane@example.com","subject":"Hi","message":"Hello"}`},
		{"Test invalid email", `{"name":"Jane","email":"not-an-email","subject":"Hi","message":"Hello"}`},
		{"Test missing message", `{"name":"Jane","email":"jane@example.com","subject":"Hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, ContactPath, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
