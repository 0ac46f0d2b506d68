package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/core/cookie"
)

const (
	testSecret  = "test-secret-key-32-characters!!!"
	testSecret2 = "another-secret-key-32-chars!!!!!"
)

// requestWith returns a request carrying the cookies set on rec.
func requestWith(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{"valid", []string{testSecret}, nil},
		{"no secrets", nil, cookie.ErrNoSecret},
		{"only empty secrets", []string{"", ""}, cookie.ErrNoSecret},
		{"short secret", []string{"short"}, cookie.ErrSecretTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := cookie.New(tt.secrets)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "lang", "fr"))

	value, err := m.Get(requestWith(rec), "lang")
	require.NoError(t, err)
	assert.Equal(t, "fr", value)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "lang")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(rec, "__session", "token-123"))

		value, err := m.GetSigned(requestWith(rec), "__session")
		require.NoError(t, err)
		assert.Equal(t, "token-123", value)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(rec, "__session", "token-123"))

		c := rec.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, "|")
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: c.Name, Value: "dG9rZW4tNDU2|" + sig})

		_, err := m.GetSigned(r, "__session")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "__session", Value: "no-separator"})

		_, err := m.GetSigned(r, "__session")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{testSecret2, testSecret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, old.SetSigned(rec, "__session", "token"))

	value, err := rotated.GetSigned(requestWith(rec), "__session")
	require.NoError(t, err)
	assert.Equal(t, "token", value)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Delete(rec, "__session")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "__session", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestManager_TooLarge(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	err = m.Set(httptest.NewRecorder(), "big", strings.Repeat("x", cookie.MaxCookieSize))
	var tooLarge cookie.ErrCookieTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "big", tooLarge.Name)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m, err := cookie.NewFromConfig(cookie.Config{
		Secrets:  " " + testSecret + " , ," + testSecret2,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "__session", "v"))

	c := rec.Result().Cookies()[0]
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	_, err = cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
