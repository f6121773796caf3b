package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/timeutil"
)

// ErrSessionNotFound is returned when a session ID is unknown or has
// expired.
var ErrSessionNotFound = errors.New("search session not found")

// DefaultSessionTTL bounds how long an idle session survives between
// requests before the manager drops it.
const DefaultSessionTTL = 30 * time.Minute

// SessionManager keeps one SearchSession per client, keyed by an opaque
// ID, and drops sessions that have been idle longer than the TTL. Expiry
// runs inline on every access rather than on a background timer.
type SessionManager struct {
	searcher SearchUseCase
	clock    timeutil.Clock
	log      *logger.Logger
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session  *SearchSession
	lastUsed time.Time
}

// NewSessionManager creates a manager over the given search use case. A
// non-positive ttl falls back to DefaultSessionTTL; a nil clock falls back
// to the real clock.
func NewSessionManager(searcher SearchUseCase, clock timeutil.Clock, ttl time.Duration, log *logger.Logger) *SessionManager {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionManager{
		searcher: searcher,
		clock:    clock,
		log:      log.WithComponent("sessions"),
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
	}
}

// Open creates a fresh session and returns its ID alongside it.
func (m *SessionManager) Open() (string, *SearchSession) {
	id := uuid.NewString()
	session := NewSearchSession(m.searcher, m.clock, m.log)

	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	m.evictExpired(now)
	m.sessions[id] = &sessionEntry{session: session, lastUsed: now}
	m.log.Debug().Str("session_id", id).Msg("Opened search session")
	return id, session
}

// Get returns the session under the given ID and refreshes its idle timer.
func (m *SessionManager) Get(id string) (*SearchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	m.evictExpired(now)

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastUsed = now
	return entry.session, nil
}

// Close drops the session under the given ID. Unknown IDs are a no-op.
func (m *SessionManager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports how many live sessions the manager currently holds.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// evictExpired drops sessions idle past the TTL. Callers must hold mu.
func (m *SessionManager) evictExpired(now time.Time) {
	for id, entry := range m.sessions {
		if now.Sub(entry.lastUsed) > m.ttl {
			delete(m.sessions, id)
			m.log.Debug().Str("session_id", id).Msg("Expired idle search session")
		}
	}
}
