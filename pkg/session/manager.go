package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ufal/maskit-web/pkg/render"
)

// Manager manages sessions in memory
type Manager struct {
	sessions map[string]*Session
	defaults render.DisplayOptions
	mu       sync.RWMutex
}

// NewManager creates a new session manager. New sessions start with defaults
// as their display options.
func NewManager(defaults render.DisplayOptions) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		defaults: defaults,
	}
}

// Create creates a new idle session
func (m *Manager) Create() *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Options:   m.defaults,
		Status:    StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	return session
}

// Get retrieves a session by ID
func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return session, nil
}

// List returns copies of all sessions
func (m *Manager) List() []Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s.Clone())
	}
	return sessions
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Delete cancels any submission in flight and removes the session
func (m *Manager) Delete(sessionID string) error {
	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	session.Cancel()
	return nil
}

// PruneIdle removes sessions without activity for longer than maxIdle.
// Sessions with a submission in flight are kept. Returns the number removed.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		updatedAt, status := s.lastActivity()
		if status == StatusProcessing || !updatedAt.Before(cutoff) {
			continue
		}
		delete(m.sessions, id)
		removed++
	}
	return removed
}
