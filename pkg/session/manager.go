package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Manager issues and resolves storefront sessions. Sessions live in
// process memory only: no resource is shared across independent sessions
// and everything is discarded on teardown.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager constructs an empty in-memory session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Issue mints a new session with a fresh token and default state.
func (m *Manager) Issue() *Session {
	sess := &Session{
		id:    uuid.NewString(),
		state: newState(),
	}

	m.mu.Lock()
	m.sessions[sess.id] = sess
	m.mu.Unlock()

	return sess
}

// Lookup returns the session for the given token, if any.
func (m *Manager) Lookup(token string) (*Session, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()
	return sess, ok
}

// Resolve returns the session for the token, issuing a new one when the
// token is blank or unknown.
func (m *Manager) Resolve(token string) *Session {
	if sess, ok := m.Lookup(token); ok {
		return sess
	}
	return m.Issue()
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
