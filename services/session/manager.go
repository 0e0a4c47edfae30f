package session

import (
	"sync"

	"go.uber.org/zap"
)

// StorageFactory builds the durable credential storage for a session ID.
type StorageFactory func(sessionID string) CredentialStorage

// Manager hosts one Store per device session ID so the server can track many
// independent session lifecycles at once.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	factory StorageFactory
	logger  *zap.Logger
}

// NewManager creates a manager that builds per-session storage on demand.
func NewManager(factory StorageFactory, logger *zap.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		factory: factory,
		logger:  logger,
	}
}

// Store returns the session store for the given ID, creating and rehydrating
// it on first use.
func (m *Manager) Store(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := NewStore(m.factory(sessionID), m.logger)
	m.stores[sessionID] = s
	return s
}

// Drop forgets the in-memory store for a session ID. Durable state is left
// alone; use Store(id).Logout() to erase it.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
