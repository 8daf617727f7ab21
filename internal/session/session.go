// Package session tracks who is currently logged in. The application keeps
// a single active session for the whole process: each successful login
// replaces the previous session, so a login from a second browser silently
// supersedes the first one everywhere. Clients hold a random token and the
// gate looks it up here. Nothing is persisted and nothing expires.
package session

import (
	"encoding/base64"
	"errors"
	"sync"

	"github.com/gorilla/securecookie"
)

const tokenSize = 32

var ErrTokenGeneration = errors.New("could not generate session token")

// Manager holds the one active session, if any.
type Manager struct {
	mu       sync.RWMutex
	token    string
	username string
}

func NewManager() *Manager {
	return &Manager{}
}

// Login installs a new session for username and returns its token. Any
// previously active session is replaced, which invalidates its token.
func (m *Manager) Login(username string) (string, error) {
	raw := securecookie.GenerateRandomKey(tokenSize)
	if raw == nil {
		return "", ErrTokenGeneration
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	m.mu.Lock()
	m.token = token
	m.username = username
	m.mu.Unlock()

	return token, nil
}

// Logout clears the active session if token matches it. A stale token is
// ignored so that logging out of a superseded session does not kick out
// the current user.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	if token != "" && token == m.token {
		m.token = ""
		m.username = ""
	}
	m.mu.Unlock()
}

// CurrentUser returns the username the token belongs to, if it is the
// active session.
func (m *Manager) CurrentUser(token string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if token == "" || token != m.token {
		return "", false
	}
	return m.username, true
}

// IsActive reports whether token identifies the active session.
func (m *Manager) IsActive(token string) bool {
	_, ok := m.CurrentUser(token)
	return ok
}

// ActiveUser returns the username of the active session regardless of
// token, or "" when nobody is logged in.
func (m *Manager) ActiveUser() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username
}
