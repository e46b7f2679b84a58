package session

import (
	"context"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// sessionMemoryStore keeps sessions in process. It is meant for development
// and tests; sessions do not survive a restart.
type sessionMemoryStore struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	sessions map[string]memoryEntry
}

func NewSessionMemoryStore(clock clockwork.Clock) contracts.SessionStore {
	return &sessionMemoryStore{
		clock:    clock,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *sessionMemoryStore) Set(ctx context.Context, session *models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.sweepExpired(now)
	s.sessions[session.SessionID] = memoryEntry{
		session:   *session,
		expiresAt: now.Add(ttl),
	}
	return nil
}

// sweepExpired drops every expired entry. Callers hold s.mu.
func (s *sessionMemoryStore) sweepExpired(now time.Time) {
	for sessionID, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, sessionID)
		}
	}
}

func (s *sessionMemoryStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if !s.clock.Now().Before(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, nil
	}

	session := entry.session
	return &session, nil
}

func (s *sessionMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
