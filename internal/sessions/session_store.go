package sessions

import (
	"context"
	"errors"
	"sync"
	"time"

	"log-dashboard/internal/shared/ulid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session")
)

//go:generate mockgen -source=session_store.go -destination=./mocks/session_store_mock.go -package=mocks
type SessionStore interface {
	// Create opens an authenticated session for username holding the backend access token.
	Create(ctx context.Context, username string, accessToken string) (*Session, error)
	// Get returns a live session. Expired sessions are evicted and reported as ErrSessionNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *memorySessionStore) Create(ctx context.Context, username string, accessToken string) (*Session, error) {
	if username == "" || accessToken == "" {
		return nil, ErrInvalidSession
	}

	now := s.now()
	session := &Session{
		ID:            ulid.NewULID(),
		Username:      username,
		AccessToken:   accessToken,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sweepExpiredLocked(now)
	s.sessions[session.ID] = session
	active := len(s.sessions)
	s.mu.Unlock()

	metricActiveSessions.Set(float64(active))
	return copySession(session), nil
}

func (s *memorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	if !ulid.IsValid(id) {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	if !s.now().Before(session.ExpiresAt) {
		_ = s.Delete(ctx, id)
		return nil, ErrSessionNotFound
	}
	return copySession(session), nil
}

func (s *memorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	active := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	metricActiveSessions.Set(float64(active))
	return nil
}

// sweepExpiredLocked drops every session expired at now. Callers hold the write lock.
func (s *memorySessionStore) sweepExpiredLocked(now time.Time) {
	for id, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

// copySession hands out copies so callers cannot mutate stored state.
func copySession(s *Session) *Session {
	c := *s
	return &c
}
