package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store defines the persistence interface for sessions.
// Implementations must handle concurrent access safely.
type Store[User any] interface {
	GetByToken(ctx context.Context, token string) (*Session[User], error)
	Save(ctx context.Context, session *Session[User]) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes all expired sessions and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// MemoryStore keeps sessions in process memory. Everything is lost on restart.
type MemoryStore[User any] struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session[User]
	tokens   map[string]uuid.UUID
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[User any]() *MemoryStore[User] {
	return &MemoryStore[User]{
		sessions: make(map[uuid.UUID]Session[User]),
		tokens:   make(map[string]uuid.UUID),
	}
}

// GetByToken returns a copy of the session owning token.
func (s *MemoryStore[User]) GetByToken(_ context.Context, token string) (*Session[User], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Save stores a copy of the session. A rotated token replaces the previous one,
// so the old token stops resolving. A copy carrying neither the stored token
// nor a rotation from it was loaded before another request rotated the
// session and is rejected with ErrStaleSession.
func (s *MemoryStore[User]) Save(_ context.Context, sess *Session[User]) error {
	if sess == nil {
		return ErrSaveSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.sessions[sess.ID]; ok && prev.Token != sess.Token {
		if sess.rotatedFrom != prev.Token {
			return ErrStaleSession
		}
		delete(s.tokens, prev.Token)
	}

	stored := *sess
	stored.isModified = false
	stored.rotatedFrom = ""
	s.sessions[sess.ID] = stored
	s.tokens[sess.Token] = sess.ID
	return nil
}

// Delete removes a session.
func (s *MemoryStore[User]) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.tokens, sess.Token)
	delete(s.sessions, id)
	return nil
}

// DeleteExpired removes every expired session.
func (s *MemoryStore[User]) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var n int64
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.tokens, sess.Token)
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions.
func (s *MemoryStore[User]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
