// Package session implements the server-side session records behind the
// admin login. A record carries its own expiry timestamp; expired records
// are purged the moment they are read, never left to pass validation later.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage"

	"github.com/andriwebdev/portfolio-admin/internal/db/models"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

var (
	// ErrNotFound is returned when no session exists for the given ID.
	ErrNotFound = errors.New("session not found")
	// ErrExpired is returned when the session exists but its expiry has passed.
	// The stored record is deleted before this is returned.
	ErrExpired = errors.New("session expired")
)

// Store is the global session store instance.
var Store *session.Store

// Data represents the session data structure.
type Data struct {
	User      models.User
	ExpiresAt time.Time
}

// Valid reports whether the session is still usable at the given time.
func (s *Data) Valid(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	s.ExpiresAt = time.Now().Add(exp)

	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
// An expired record is deleted from the store and ErrExpired is returned.
func (s *Data) Read(sessionID string) error {
	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	if len(byteData) == 0 {
		return ErrNotFound
	}

	if err = json.Unmarshal(byteData, s); err != nil {
		return err
	}

	if !s.Valid(time.Now()) {
		_ = Store.Storage.Delete(sessionID)
		*s = Data{}

		return ErrExpired
	}

	return nil
}

// Delete removes the session record for the given session ID.
// Deleting a session that does not exist is not an error.
func Delete(sessionID string) error {
	return Store.Storage.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
func Init(storage storage.Storage) {
	if storage == nil {
		panic("storage is nil")
	}

	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
