package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/response"
	"github.com/hooly/hooly/core/router"
	"github.com/hooly/hooly/internal/guard"
	"github.com/hooly/hooly/middleware"
)

func newGuardedRouter(authenticated bool) router.Router[*router.Context] {
	transport := &mockTransport{}
	transport.On("Load", mock.Anything).Return(newTestSession(authenticated), nil)
	transport.On("Store", mock.Anything, mock.Anything).Return(nil)

	ok := func(*router.Context) handler.Response { return response.String("page") }

	r := router.New[*router.Context]()
	r.Use(middleware.Session[*router.Context, testUser](transport, nil))
	r.Group(func(r router.Router[*router.Context]) {
		r.Use(middleware.RequireAuth[*router.Context, testUser]())
		r.Get("/dashboard", ok)
	})
	r.Group(func(r router.Router[*router.Context]) {
		r.Use(middleware.RequireGuest[*router.Context, testUser]())
		r.Get("/login", ok)
	})
	return r
}

func TestRequireAuthAndGuest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		authenticated bool
		wantStatus    int
		wantLocation  string
	}{
		{"dashboard anonymous", "/dashboard", false, http.StatusFound, "/login"},
		{"dashboard authenticated", "/dashboard", true, http.StatusOK, ""},
		{"login anonymous", "/login", false, http.StatusOK, ""},
		{"login authenticated", "/login", true, http.StatusFound, "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			newGuardedRouter(tt.authenticated).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestGuardHTMXRedirect(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(response.HeaderHXRequest, "true")
	w := httptest.NewRecorder()
	newGuardedRouter(false).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", w.Header().Get(response.HeaderHXLocation))
}

func TestGuardWithoutSessionTreatsVisitorAsAnonymous(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.Guard(func(ctx *router.Context) guard.Decision {
		return guard.Protected(middleware.Authenticated[testUser](ctx))
	}))
	r.Get("/dashboard", func(*router.Context) handler.Response { return response.String("page") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
