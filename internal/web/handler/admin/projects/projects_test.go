package projects

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
	require.NoError(t, db.AutoMigrate(&models.Project{}))

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db, nil))

	return app, db
}

func perform(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestCreate_SplitsTechStack(t *testing.T) {
	app, _ := newTestService(t)

	body := `{"title":"Demo","description":"A demo project","tech_stack":"React, Node"}`
	resp := perform(t, app, http.MethodPost, Path, body)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.Len(t, payload.Projects, 1)
	assert.Equal(t, []string{"React", "Node"}, payload.Projects[0].TechStack)
}

func TestCreate_RejectsMissingFields(t *testing.T) {
	app, db := newTestService(t)

	tests := []struct {
		name string
		body string
	}{
		{"Test empty description", `{"title":"Demo","description":""}`},
		{"Test missing description", `{"title":"Demo"}`},
		{"Test missing title", `{"description":"A demo project"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := perform(t, app, http.MethodPost, Path, tt.body)
			_ = resp.Body.Close()

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}

	// rejected creates never reach the database
	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestList_FeaturedFirst(t *testing.T) {
	app, db := newTestService(t)

	require.NoError(t, db.Create(&models.Project{Title: "Plain", Description: "Older"}).Error)
	require.NoError(t, db.Create(&models.Project{Title: "Starred", Description: "Featured", Featured: true}).Error)

	resp := perform(t, app, http.MethodGet, Path, "")

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.Len(t, payload.Projects, 2)
	assert.Equal(t, "Starred", payload.Projects[0].Title)
}

func TestSplitTechStack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "Test comma separated list",
			raw:  "React, Node",
			want: []string{"React", "Node"},
		},
		{
			name: "Test surrounding whitespace",
			raw:  "  Go ,  Fiber  , GORM ",
			want: []string{"Go", "Fiber", "GORM"},
		},
		{
			name: "Test empty entries dropped",
			raw:  "React,,Node,",
			want: []string{"React", "Node"},
		},
		{
			name: "Test empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "Test only separators",
			raw:  ", ,,",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTechStack(tt.raw))
		})
	}
}
