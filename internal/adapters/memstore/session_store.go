package memstore

// Package memstore provides the in-memory adapters behind the demo
// portal. All portal data is static and seeded at startup; there is no
// database. An optional per-call latency reproduces the simulated API
// delay of the original demo so the UI's loading states stay exercised.

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// SessionStore is an in-memory session store. Suitable for tests and for
// single-process demo runs; production uses the Redis store so sessions
// survive a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errEmptySessionID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(m.sessions, id)
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// ErrNotFound is returned when a session is not present.
var ErrNotFound = ports.ErrSessionNotFound

type emptySessionIDError struct{}

func (emptySessionIDError) Error() string { return "session ID cannot be empty" }

var errEmptySessionID error = emptySessionIDError{}
