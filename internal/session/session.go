// Package session scopes the career-exploration state. Each session owns
// its response cache, analyzer memo and chat history; nothing is shared
// between sessions and nothing survives the process.
package session

import (
	"sync"
	"time"

	"github.com/anatolykoptev/go_career/internal/career"
	"github.com/anatolykoptev/go_career/internal/engine"
)

// DefaultID is used when a caller does not name a session.
const DefaultID = "default"

// Session bundles the per-user state for one exploration session.
type Session struct {
	ID        string
	Cache     *engine.ResponseCache
	Analyzer  *career.Analyzer
	Chat      *career.Assistant
	CreatedAt time.Time
}

// EvictRecord drops the memoized analysis for a career name so the next
// analysis runs the pipeline again. Cached query responses are untouched
// and keep serving until their TTL lapses.
func (s *Session) EvictRecord(careerName string) {
	s.Analyzer.Evict(careerName)
}

// Manager hands out sessions by ID, creating them on first use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session for an ID, creating it if absent. An empty ID
// maps to DefaultID.
func (m *Manager) Get(id string) *Session {
	if id == "" {
		id = DefaultID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	ttl := engine.Cfg.CacheTTL
	if ttl <= 0 {
		ttl = engine.DefaultCacheTTL
	}
	cache := engine.NewResponseCache(ttl)
	s := &Session{
		ID:        id,
		Cache:     cache,
		Analyzer:  career.NewAnalyzer(cache),
		Chat:      career.NewAssistant(),
		CreatedAt: time.Now(),
	}
	m.sessions[id] = s
	return s
}

// Len reports how many sessions exist.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
