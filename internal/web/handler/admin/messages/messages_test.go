package messages

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.Message{}))

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app, db
}

func seedInbox(t *testing.T, db *gorm.DB) {
	t.Helper()

	base := time.Now().Add(-time.Hour)
	rows := []models.Message{
		{Name: "Jane", Email: "jane@example.com", Subject: "Project inquiry", Message: "Hello", Read: true, CreatedAt: base},
		{Name: "Bob", Email: "bob@example.com", Subject: "Question", Message: "About your rates", CreatedAt: base.Add(time.Minute)},
		{Name: "Eve", Email: "eve@example.com", Subject: "Hi", Message: "Nice portfolio", CreatedAt: base.Add(2 * time.Minute)},
	}

	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

type listResponse struct {
	Messages []models.Message `json:"messages"`
	Unread   int64            `json:"unread"`
}

func performList(t *testing.T, app *fiber.App, query string) listResponse {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path+query, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestList_NewestFirstWithUnreadCount(t *testing.T) {
	app, db := newTestService(t)
	seedInbox(t, db)

	body := performList(t, app, "")

	require.Len(t, body.Messages, 3)
	assert.Equal(t, "Eve", body.Messages[0].Name)
	assert.Equal(t, "Jane", body.Messages[2].Name)
	assert.EqualValues(t, 2, body.Unread)
}

func TestList_Filters(t *testing.T) {
	app, db := newTestService(t)
	seedInbox(t, db)

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{"Test search matches subject", "?search=inquiry", []string{"Jane"}},
		{"Test search is case insensitive", "?search=RATES", []string{"Bob"}},
		{"Test unread filter", "?read=unread", []string{"Eve", "Bob"}},
		{"Test read filter", "?read=read", []string{"Jane"}},
		{"Test combined filters", "?search=example.com&read=unread", []string{"Eve", "Bob"}},
		{"Test no match yields empty list", "?search=nonexistent", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := performList(t, app, tt.query)

			names := make([]string, 0, len(body.Messages))
			for _, m := range body.Messages {
				names = append(names, m.Name)
			}

			assert.Equal(t, tt.wantNames, names)
			// the unread count ignores the filters
			assert.EqualValues(t, 2, body.Unread)
		})
	}
}

func TestToggleRead(t *testing.T) {
	app, db := newTestService(t)

	msg := models.Message{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	require.NoError(t, db.Create(&msg).Error)

	target := fmt.Sprintf("%s/%d/read", Path, msg.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, target, nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Message
	require.NoError(t, db.First(&stored, msg.ID).Error)
	assert.True(t, stored.Read)

	// toggling again flips it back
	resp, err = app.Test(httptest.NewRequest(http.MethodPut, target, nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, msg.ID).Error)
	assert.False(t, stored.Read)
}

func TestReadAll(t *testing.T) {
	app, db := newTestService(t)
	seedInbox(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, Path+"/read-all", nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var unread int64
	require.NoError(t, db.Model(&models.Message{}).Where(map[string]any{"read": false}).Count(&unread).Error)
	assert.EqualValues(t, 0, unread)
}

func TestDelete_UnknownID(t *testing.T) {
	app, _ := newTestService(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, Path+"/42", nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
