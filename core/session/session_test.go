package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/core/session"
)

type testUser struct {
	Email string
}

func TestNew(t *testing.T) {
	t.Parallel()

	sess, err := session.New[testUser](time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.NotEmpty(t, sess.Token)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, testUser{}, sess.User)
	assert.True(t, sess.IsModified())
	assert.False(t, sess.IsExpired())
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Second)
}

func TestSession_Authenticate(t *testing.T) {
	t.Parallel()

	sess, err := session.New[testUser](time.Hour)
	require.NoError(t, err)
	id, token := sess.ID, sess.Token

	require.NoError(t, sess.Authenticate(testUser{Email: "a@b.com"}))

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "a@b.com", sess.User.Email)
	assert.Equal(t, id, sess.ID)
	assert.NotEqual(t, token, sess.Token)
}

func TestSession_AuthenticateReplacesUser(t *testing.T) {
	t.Parallel()

	sess, err := session.New[testUser](time.Hour)
	require.NoError(t, err)

	require.NoError(t, sess.Authenticate(testUser{Email: "first@b.com"}))
	require.NoError(t, sess.Authenticate(testUser{Email: "second@b.com"}))

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "second@b.com", sess.User.Email)
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	sess, err := session.New[testUser](time.Hour)
	require.NoError(t, err)
	require.NoError(t, sess.Authenticate(testUser{Email: "a@b.com"}))
	token := sess.Token

	require.NoError(t, sess.Logout())

	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, testUser{}, sess.User)
	assert.NotEqual(t, token, sess.Token)

	// Logging out an anonymous session leaves it anonymous.
	require.NoError(t, sess.Logout())
	assert.False(t, sess.IsAuthenticated())
}

func TestSession_Touch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		updatedAt time.Duration
		interval  time.Duration
		want      bool
	}{
		{"interval elapsed", -10 * time.Minute, 5 * time.Minute, true},
		{"interval not elapsed", -time.Minute, 5 * time.Minute, false},
		{"zero interval", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := session.Session[testUser]{
				UpdatedAt: time.Now().Add(tt.updatedAt),
				ExpiresAt: time.Now().Add(time.Minute),
			}
			expires := sess.ExpiresAt

			assert.Equal(t, tt.want, sess.Touch(time.Hour, tt.interval))
			assert.Equal(t, tt.want, sess.IsModified())
			if tt.want {
				assert.True(t, sess.ExpiresAt.After(expires))
			} else {
				assert.Equal(t, expires, sess.ExpiresAt)
			}
		})
	}
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	sess := session.Session[testUser]{ExpiresAt: time.Now().Add(-time.Second)}
	assert.True(t, sess.IsExpired())

	sess.ExpiresAt = time.Now().Add(time.Minute)
	assert.False(t, sess.IsExpired())
}

func TestSession_IsAuthenticatedRequiresToken(t *testing.T) {
	t.Parallel()

	sess := session.Session[testUser]{Authenticated: true}
	assert.False(t, sess.IsAuthenticated())
}
