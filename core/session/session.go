package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session holds the authentication state of one browser.
// The User type parameter is the application's user record; its zero value means no user.
type Session[User any] struct {
	// ID is the stable session identifier; it never changes during the session lifecycle.
	ID uuid.UUID

	// Token is the secret carried by the transport (32 random bytes, base64url).
	// It is rotated on every authentication change.
	Token string

	Authenticated bool
	User          User

	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// isModified tracks if the session needs saving
	isModified bool
	// rotatedFrom is the token this copy replaced since it was last saved.
	rotatedFrom string
}

// New creates an anonymous session with a fresh ID and token.
// The session is marked as modified and ready to be saved.
func New[User any](ttl time.Duration) (Session[User], error) {
	token, err := generateToken()
	if err != nil {
		return Session[User]{}, errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	return Session[User]{
		ID:         uuid.New(),
		Token:      token,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
		isModified: true,
	}, nil
}

// Authenticate marks the session as authenticated for user.
// The token is rotated, the session ID is kept.
func (s *Session[User]) Authenticate(user User) error {
	if err := s.rotateToken(); err != nil {
		return err
	}
	s.Authenticated = true
	s.User = user
	s.UpdatedAt = time.Now()
	return nil
}

// Logout clears the user and the authenticated flag and rotates the token.
func (s *Session[User]) Logout() error {
	if err := s.rotateToken(); err != nil {
		return err
	}
	s.Authenticated = false
	s.User = *new(User)
	s.UpdatedAt = time.Now()
	return nil
}

// Touch extends the expiration if touchInterval has elapsed since the last update.
// It reports whether the session changed.
func (s *Session[User]) Touch(ttl, touchInterval time.Duration) bool {
	if time.Since(s.UpdatedAt) < touchInterval {
		return false
	}
	now := time.Now()
	s.ExpiresAt = now.Add(ttl)
	s.UpdatedAt = now
	s.isModified = true
	return true
}

// IsAuthenticated reports whether a user is logged in on this session.
func (s Session[User]) IsAuthenticated() bool {
	return s.Authenticated && s.Token != ""
}

// IsModified returns true if the session has been modified and needs saving.
func (s Session[User]) IsModified() bool {
	return s.isModified
}

// IsExpired returns true if the session has expired.
func (s Session[User]) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

func (s *Session[User]) rotateToken() error {
	token, err := generateToken()
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}
	if s.rotatedFrom == "" {
		s.rotatedFrom = s.Token
	}
	s.Token = token
	s.isModified = true
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
