package cart

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type session struct {
	cart       *Cart
	lastAccess time.Time
}

// Manager owns the per-session carts. Carts live only in memory; they are
// created on first access and dropped when the session goes idle past the
// purge TTL or the process exits.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	logger   *zap.Logger
}

// NewManager creates an empty cart manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		logger:   logger,
	}
}

// Get returns the session's cart, creating an empty one on first access,
// and refreshes the session's idle clock.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{cart: New()}
		m.sessions[sessionID] = s
	}
	s.lastAccess = time.Now()
	return s.cart
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// PurgeIdle drops carts that have not been touched within ttl and returns
// how many were removed. Carts with a submission in flight are skipped and
// picked up on a later sweep.
func (m *Manager) PurgeIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	purged := 0
	for id, s := range m.sessions {
		if s.lastAccess.After(cutoff) || s.cart.Submitting() {
			continue
		}
		delete(m.sessions, id)
		purged++
	}
	if purged > 0 {
		m.logger.Info("purged idle carts",
			zap.Int("purged", purged),
			zap.Int("remaining", len(m.sessions)),
		)
	}
	return purged
}
