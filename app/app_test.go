package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/app"
	"github.com/hooly/hooly/core/cookie"
	"github.com/hooly/hooly/core/server"
	"github.com/hooly/hooly/core/session"
)

const testSecret = "test-secret-key-32-characters!!!"

func testConfig() app.Config {
	return app.Config{
		Cookie:          cookie.Config{Secrets: testSecret, Path: "/", SameSite: http.SameSiteLaxMode},
		Session:         session.Config{TTL: time.Hour, TouchInterval: time.Minute},
		Server:          server.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second},
		AppName:         "hooly-test",
		Env:             "test",
		LogLevel:        "error",
		DefaultLanguage: "fr",
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("serves the portal", func(t *testing.T) {
		t.Parallel()

		a, err := app.New(app.WithConfig(testConfig()), app.WithLogger(discard()))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		body := url.Values{"email": {"a@b.com"}, "password": {"x"}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec = httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.NotEmpty(t, rec.Result().Cookies())
	})

	t.Run("rejects short cookie secret", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.Cookie.Secrets = "short"
		_, err := app.New(app.WithConfig(cfg), app.WithLogger(discard()))
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})

	t.Run("rejects nil options", func(t *testing.T) {
		t.Parallel()

		_, err := app.New(app.WithConfig(testConfig()), app.WithLogger(nil))
		assert.Error(t, err)
		_, err = app.New(app.WithConfig(testConfig()), app.WithAuthenticator(nil))
		assert.Error(t, err)
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CleanupInterval = 10 * time.Millisecond

	a, err := app.New(app.WithConfig(cfg), app.WithLogger(discard()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
