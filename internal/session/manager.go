// Package session implements opaque server-side login sessions. Only the
// random session ID travels in the cookie; all session state stays in memory
// on the server.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yjkwon-dev/pinggye/internal/logger"
)

type session struct {
	userID    string
	expiresAt time.Time
}

// Manager issues, resolves and destroys sessions. Expired sessions are
// rejected on resolve and swept periodically by the janitor.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]session

	ttl time.Duration
	now func() time.Time

	stop chan struct{}
	done chan struct{}

	log *logger.Logger
}

// NewManager creates a session manager with the given session lifetime.
func NewManager(ttl time.Duration, log *logger.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		log:      log,
	}
}

// Create starts a new session for the user and returns its opaque ID.
func (m *Manager) Create(userID string) string {
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = session{userID: userID, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()

	return id
}

// Resolve returns the user ID bound to the session, or false when the
// session is unknown or has expired. Expired sessions are removed on sight.
func (m *Manager) Resolve(id string) (string, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if m.now().After(s.expiresAt) {
		m.Destroy(id)
		return "", false
	}
	return s.userID, true
}

// Destroy removes the session if it exists.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// StartJanitor sweeps expired sessions every interval until Stop is called.
func (m *Manager) StartJanitor(interval time.Duration) {
	go func() {
		defer close(m.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop terminates the janitor goroutine and waits for it to exit.
func (m *Manager) Stop() {
	close(m.stop)
	<-m.done
}

func (m *Manager) sweep() {
	now := m.now()

	m.mu.Lock()
	swept := 0
	for id, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, id)
			swept++
		}
	}
	m.mu.Unlock()

	if swept > 0 {
		m.log.Debug().Int("swept", swept).Msg("expired sessions removed")
	}
}
