package sessiontransport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/core/cookie"
	"github.com/hooly/hooly/core/router"
	"github.com/hooly/hooly/core/session"
	"github.com/hooly/hooly/core/sessiontransport"
)

const testSecret = "test-secret-key-32-characters!!!"

type testUser struct {
	Email string
}

type fixture struct {
	store     *session.MemoryStore[testUser]
	transport *sessiontransport.Cookie[testUser]
	cookies   *cookie.Manager
}

func newFixture(t *testing.T, opts ...session.Option) fixture {
	t.Helper()

	store := session.NewMemoryStore[testUser]()
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	mgr := session.NewManager(store, opts...)
	return fixture{
		store:     store,
		transport: sessiontransport.NewCookieFromConfig(sessiontransport.CookieConfig{CookieName: "__session"}, mgr, cookies),
		cookies:   cookies,
	}
}

func newCtx(r *http.Request) (*router.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return router.NewContext(rec, r, nil), rec
}

// withSessionCookie builds a request carrying a signed session cookie.
func (f fixture) withSessionCookie(t *testing.T, token string) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, f.cookies.SetSigned(rec, "__session", token))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestCookie_LoadWithoutCookieCreatesAnonymousSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx, _ := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))

	sess, err := f.transport.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, 1, f.store.Len())
}

func TestCookie_LoadInvalidCookieCreatesAnonymousSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	t.Run("tampered", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "__session", Value: "garbage"})
		ctx, _ := newCtx(r)

		sess, err := f.transport.Load(ctx)
		require.NoError(t, err)
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("unknown token", func(t *testing.T) {
		ctx, _ := newCtx(f.withSessionCookie(t, "unknown"))

		sess, err := f.transport.Load(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "unknown", sess.Token)
	})
}

func TestCookie_AuthenticateAndReload(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	ctx, rec := newCtx(httptest.NewRequest(http.MethodPost, "/login", nil))
	sess, err := f.transport.Load(ctx)
	require.NoError(t, err)

	sess, err = f.transport.Authenticate(ctx, sess, testUser{Email: "a@b.com"})
	require.NoError(t, err)
	require.NoError(t, f.transport.Store(ctx, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Positive(t, cookies[0].MaxAge)

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	next.AddCookie(cookies[0])
	ctx, _ = newCtx(next)

	loaded, err := f.transport.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsAuthenticated())
	assert.Equal(t, "a@b.com", loaded.User.Email)
}

func TestCookie_Logout(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx, _ := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))

	sess, err := f.transport.Load(ctx)
	require.NoError(t, err)
	sess, err = f.transport.Authenticate(ctx, sess, testUser{Email: "a@b.com"})
	require.NoError(t, err)

	ctx, rec := newCtx(f.withSessionCookie(t, sess.Token))
	out, err := f.transport.Logout(ctx, sess)
	require.NoError(t, err)
	require.NoError(t, f.transport.Store(ctx, out))

	assert.False(t, out.IsAuthenticated())
	assert.Len(t, rec.Result().Cookies(), 1, "rotated token must be written")

	ctx, _ = newCtx(f.withSessionCookie(t, sess.Token))
	reloaded, err := f.transport.Load(ctx)
	require.NoError(t, err)
	assert.False(t, reloaded.IsAuthenticated(), "old token must not resolve to the logged in session")
}

func TestCookie_StoreSkipsUnchangedCookie(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.WithTouchInterval(time.Hour))
	ctx, _ := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))

	sess, err := f.transport.Load(ctx)
	require.NoError(t, err)

	ctx, rec := newCtx(f.withSessionCookie(t, sess.Token))
	require.NoError(t, f.transport.Store(ctx, sess))
	assert.Empty(t, rec.Result().Cookies())
}

func TestCookie_StoreExpiredSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.WithTouchInterval(0))
	sess, err := session.New[testUser](-time.Minute)
	require.NoError(t, err)

	ctx, _ := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))
	err = f.transport.Store(ctx, sess)
	assert.ErrorIs(t, err, sessiontransport.ErrExpiredSession)
}
