package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/core/session"
)

// mockStore implements session.Store for failure paths.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByToken(ctx context.Context, token string) (*session.Session[testUser], error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session[testUser]), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, sess *session.Session[testUser]) error {
	return m.Called(ctx, sess).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestManager_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore[testUser]()
	mgr := session.NewManager(store, session.WithTTL(time.Hour))

	anon, err := mgr.New(ctx)
	require.NoError(t, err)
	assert.False(t, anon.IsModified())

	loaded, err := mgr.GetByToken(ctx, anon.Token)
	require.NoError(t, err)
	assert.Equal(t, anon.ID, loaded.ID)
	assert.False(t, loaded.IsAuthenticated())

	authed, err := mgr.Authenticate(ctx, loaded, testUser{Email: "a@b.com"})
	require.NoError(t, err)
	assert.True(t, authed.IsAuthenticated())

	_, err = mgr.GetByToken(ctx, anon.Token)
	assert.ErrorIs(t, err, session.ErrNotFound, "the pre-login token must stop resolving")

	loaded, err = mgr.GetByToken(ctx, authed.Token)
	require.NoError(t, err)
	assert.True(t, loaded.IsAuthenticated())
	assert.Equal(t, "a@b.com", loaded.User.Email)

	out, err := mgr.Logout(ctx, loaded)
	require.NoError(t, err)
	assert.False(t, out.IsAuthenticated())

	loaded, err = mgr.GetByToken(ctx, out.Token)
	require.NoError(t, err)
	assert.False(t, loaded.IsAuthenticated())
	assert.Equal(t, testUser{}, loaded.User)

	require.NoError(t, mgr.Delete(ctx, loaded.ID))
	require.NoError(t, mgr.Delete(ctx, loaded.ID), "deleting twice is not an error")
	assert.Equal(t, 0, store.Len())
}

func TestManager_GetByTokenExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore[testUser]()
	mgr := session.NewManager(store)

	sess, err := session.New[testUser](-time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, &sess))

	_, err = mgr.GetByToken(ctx, sess.Token)
	assert.ErrorIs(t, err, session.ErrExpired)

	n, err := mgr.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 0, store.Len())
}

func TestManager_Touch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore[testUser]()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(store, session.WithTouchInterval(0))
		sess, err := mgr.New(ctx)
		require.NoError(t, err)

		_, touched, err := mgr.Touch(ctx, sess)
		require.NoError(t, err)
		assert.False(t, touched)
	})

	t.Run("elapsed", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(store, session.WithTouchInterval(time.Minute))
		sess, err := mgr.New(ctx)
		require.NoError(t, err)
		sess.UpdatedAt = time.Now().Add(-2 * time.Minute)

		touched, ok, err := mgr.Touch(ctx, sess)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, touched.IsModified())
	})
}

func TestManager_StaleCopyKeepsRotatedSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore[testUser]()
	mgr := session.NewManager(store, session.WithTouchInterval(time.Minute))

	anon, err := mgr.New(ctx)
	require.NoError(t, err)

	// Two requests load the same anonymous session; the first one signs in.
	first, err := mgr.GetByToken(ctx, anon.Token)
	require.NoError(t, err)
	second, err := mgr.GetByToken(ctx, anon.Token)
	require.NoError(t, err)

	authed, err := mgr.Authenticate(ctx, first, testUser{Email: "a@b.com"})
	require.NoError(t, err)

	t.Run("touch is skipped", func(t *testing.T) {
		stale := second
		stale.UpdatedAt = time.Now().Add(-2 * time.Minute)

		out, touched, err := mgr.Touch(ctx, stale)
		require.NoError(t, err)
		assert.False(t, touched)
		assert.Equal(t, anon.Token, out.Token)

		loaded, err := mgr.GetByToken(ctx, authed.Token)
		require.NoError(t, err)
		assert.True(t, loaded.IsAuthenticated())
		assert.Equal(t, "a@b.com", loaded.User.Email)
	})

	t.Run("logout is rejected", func(t *testing.T) {
		_, err := mgr.Logout(ctx, second)
		require.ErrorIs(t, err, session.ErrStaleSession)
		assert.ErrorIs(t, err, session.ErrSaveSession)

		loaded, err := mgr.GetByToken(ctx, authed.Token)
		require.NoError(t, err)
		assert.True(t, loaded.IsAuthenticated())
	})

	t.Run("current copy still rotates", func(t *testing.T) {
		loaded, err := mgr.GetByToken(ctx, authed.Token)
		require.NoError(t, err)

		out, err := mgr.Logout(ctx, loaded)
		require.NoError(t, err)
		assert.False(t, out.IsAuthenticated())

		_, err = mgr.GetByToken(ctx, authed.Token)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestManager_StoreErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("save failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("Save", mock.Anything, mock.Anything).Return(boom)
		mgr := session.NewManager[testUser](store)

		_, err := mgr.New(ctx)
		assert.ErrorIs(t, err, session.ErrSaveSession)
		assert.ErrorIs(t, err, boom)
		store.AssertExpectations(t)
	})

	t.Run("authenticate save failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("Save", mock.Anything, mock.Anything).Return(boom)
		mgr := session.NewManager[testUser](store)

		sess, err := session.New[testUser](time.Hour)
		require.NoError(t, err)

		_, err = mgr.Authenticate(ctx, sess, testUser{Email: "a@b.com"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("delete failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("Delete", mock.Anything, mock.Anything).Return(boom)
		mgr := session.NewManager[testUser](store)

		err := mgr.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, session.ErrDeleteSession)
	})

	t.Run("cleanup failure stops the loop", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("DeleteExpired", mock.Anything).Return(int64(0), boom)
		mgr := session.NewManager[testUser](store)

		err := mgr.RunCleanup(ctx, time.Millisecond)()
		assert.ErrorIs(t, err, boom)
	})
}

func TestManager_RunCleanupStopsOnCancel(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(session.NewMemoryStore[testUser]())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, mgr.RunCleanup(ctx, time.Hour)())
}

func TestNewManagerFromConfig(t *testing.T) {
	t.Parallel()

	mgr := session.NewManagerFromConfig(session.NewMemoryStore[testUser](), session.Config{
		TTL:           2 * time.Hour,
		TouchInterval: time.Minute,
	})
	assert.Equal(t, 2*time.Hour, mgr.TTL())
}
