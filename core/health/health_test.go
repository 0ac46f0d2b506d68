package health_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hooly/hooly/core/health"
	"github.com/hooly/hooly/core/response"
	"github.com/hooly/hooly/core/router"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("store down") }

	r := router.New[*router.Context](router.WithErrorHandler(response.ErrorHandler[*router.Context]))
	r.Get("/live", health.Liveness[*router.Context])
	r.Get("/ready", health.Readiness[*router.Context](log, ok))
	r.Get("/not-ready", health.Readiness[*router.Context](log, ok, failing))

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/live", http.StatusOK, "ALIVE"},
		{"/ready", http.StatusOK, "READY"},
		{"/not-ready", http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
