package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Manager handles session lifecycle: creation, lookup, authentication changes and expiry.
// The touchInterval throttles how often an accessed session gets its expiration extended.
type Manager[User any] struct {
	store         Store[User]
	ttl           time.Duration
	touchInterval time.Duration
}

// NewManager creates a session manager.
func NewManager[User any](store Store[User], opts ...Option) *Manager[User] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Manager[User]{
		store:         store,
		ttl:           cfg.TTL,
		touchInterval: cfg.TouchInterval,
	}
}

// NewManagerFromConfig creates a session manager from environment configuration.
func NewManagerFromConfig[User any](store Store[User], cfg Config) *Manager[User] {
	return NewManager(store, WithTTL(cfg.TTL), WithTouchInterval(cfg.TouchInterval))
}

// New creates and saves an anonymous session.
func (m *Manager[User]) New(ctx context.Context) (Session[User], error) {
	sess, err := New[User](m.ttl)
	if err != nil {
		return Session[User]{}, err
	}
	if err := m.save(ctx, &sess); err != nil {
		return Session[User]{}, err
	}
	return sess, nil
}

// GetByToken retrieves a session by token and validates expiration.
func (m *Manager[User]) GetByToken(ctx context.Context, token string) (Session[User], error) {
	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session[User]{}, err
	}
	if sess.IsExpired() {
		return Session[User]{}, ErrExpired
	}
	return *sess, nil
}

// Authenticate logs user in on sess and saves it with a rotated token.
func (m *Manager[User]) Authenticate(ctx context.Context, sess Session[User], user User) (Session[User], error) {
	if err := sess.Authenticate(user); err != nil {
		return Session[User]{}, err
	}
	sess.Touch(m.ttl, 0)
	if err := m.save(ctx, &sess); err != nil {
		return Session[User]{}, err
	}
	return sess, nil
}

// Logout turns sess back into an anonymous session and saves it with a rotated token.
func (m *Manager[User]) Logout(ctx context.Context, sess Session[User]) (Session[User], error) {
	if err := sess.Logout(); err != nil {
		return Session[User]{}, err
	}
	if err := m.save(ctx, &sess); err != nil {
		return Session[User]{}, err
	}
	return sess, nil
}

// Touch extends the session expiration when the touch interval has elapsed.
// It reports whether the session was extended and saved. A copy that another
// request already rotated is left as stored and reported as not extended.
func (m *Manager[User]) Touch(ctx context.Context, sess Session[User]) (Session[User], bool, error) {
	original := sess
	if m.touchInterval <= 0 || !sess.Touch(m.ttl, m.touchInterval) {
		return sess, false, nil
	}
	if err := m.save(ctx, &sess); err != nil {
		if errors.Is(err, ErrStaleSession) {
			return original, false, nil
		}
		return sess, false, err
	}
	return sess, true, nil
}

// Delete removes a session from the store. Missing sessions are not an error.
func (m *Manager[User]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// CleanupExpired removes all expired sessions from the store.
func (m *Manager[User]) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// RunCleanup returns a function that calls CleanupExpired every interval until ctx is done.
// It fits errgroup.Go.
func (m *Manager[User]) RunCleanup(ctx context.Context, interval time.Duration) func() error {
	return func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if _, err := m.CleanupExpired(ctx); err != nil {
					return err
				}
			}
		}
	}
}

// TTL returns the session time-to-live.
func (m *Manager[User]) TTL() time.Duration {
	return m.ttl
}

func (m *Manager[User]) save(ctx context.Context, sess *Session[User]) error {
	if err := m.store.Save(ctx, sess); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	sess.isModified = false
	sess.rotatedFrom = ""
	return nil
}
