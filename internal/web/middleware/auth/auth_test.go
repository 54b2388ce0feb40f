package auth

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
	"github.com/andriwebdev/portfolio-admin/internal/web/session"
)

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use("/admin", New())
	app.Get("/admin/ping", func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		return c.SendString(user.Username)
	})

	return app
}

func performGet(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestNew_RejectsMissingCookie(t *testing.T) {
	session.Init(&testStorage{data: make(map[string][]byte)})
	app := newProtectedApp()

	resp := performGet(t, app, "")
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", resp.StatusCode)
	}
}

func TestNew_RejectsUnknownSession(t *testing.T) {
	session.Init(&testStorage{data: make(map[string][]byte)})
	app := newProtectedApp()

	resp := performGet(t, app, "no-such-session")
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", resp.StatusCode)
	}
}

func TestNew_RejectsExpiredSession(t *testing.T) {
	session.Init(&testStorage{data: make(map[string][]byte)})
	app := newProtectedApp()

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		t.Fatalf("failed to generate session ID: %v", err)
	}

	// negative expiry stores an already-expired record
	expired := &session.Data{User: models.User{Username: "andri"}}
	if err = expired.Write(sessionID, -time.Minute); err != nil {
		t.Fatalf("failed to write session: %v", err)
	}

	resp := performGet(t, app, sessionID)
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", resp.StatusCode)
	}

	// the expired record must be gone, not just rejected
	stored := new(session.Data)
	if err = stored.Read(sessionID); err == nil {
		t.Fatal("expected expired session to be purged")
	}
}

func TestNew_AcceptsValidSession(t *testing.T) {
	session.Init(&testStorage{data: make(map[string][]byte)})
	app := newProtectedApp()

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		t.Fatalf("failed to generate session ID: %v", err)
	}

	valid := &session.Data{User: models.User{Username: "andri"}}
	if err = valid.Write(sessionID, time.Minute); err != nil {
		t.Fatalf("failed to write session: %v", err)
	}

	resp := performGet(t, app, sessionID)
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}
}
