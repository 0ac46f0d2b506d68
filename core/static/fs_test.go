package static_test

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/core/static"
)

type testContext struct {
	context.Context
	req *http.Request
	w   http.ResponseWriter
}

func (c *testContext) Request() *http.Request              { return c.req }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(key string) string             { return "" }
func (c *testContext) SetValue(key, val any)               {}

func TestFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"assets/app.css":         {Data: []byte("main{max-width:28rem}"), Mode: 0o644},
		"assets/fonts/a.woff2":   {Data: []byte("font"), Mode: 0o644},
		"assets/docs/index.html": {Data: []byte("<p>docs</p>"), Mode: 0o644},
		"secret.txt":             {Data: []byte("secret"), Mode: 0o644},
	}

	h := static.FS[*testContext](fsys,
		static.WithSubFS("assets"),
		static.WithFSStripPrefix("/static"),
		static.WithCacheControl("public, max-age=3600"),
	)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{name: "stylesheet", path: "/static/app.css", status: http.StatusOK, body: "main{max-width:28rem}"},
		{name: "nested file", path: "/static/fonts/a.woff2", status: http.StatusOK, body: "font"},
		{name: "directory with index", path: "/static/docs/", status: http.StatusOK, body: "<p>docs</p>"},
		{name: "directory listing hidden", path: "/static/fonts/", status: http.StatusNotFound},
		{name: "outside sub tree", path: "/static/secret.txt", status: http.StatusNotFound},
		{name: "traversal", path: "/static/../secret.txt", status: http.StatusNotFound},
		{name: "missing", path: "/static/missing.css", status: http.StatusNotFound},
		{name: "without prefix", path: "/app.css", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			ctx := &testContext{Context: context.Background(), req: req, w: w}

			require.NoError(t, h(ctx)(w, req))
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
			if tt.status == http.StatusOK {
				assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
			} else {
				assert.Empty(t, w.Header().Get("Cache-Control"), "error responses are not cacheable")
			}
		})
	}

	t.Run("content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
		w := httptest.NewRecorder()
		ctx := &testContext{Context: context.Background(), req: req, w: w}

		require.NoError(t, h(ctx)(w, req))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	})
}

func TestFSStartupValidation(t *testing.T) {
	t.Parallel()

	t.Run("invalid sub path", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			static.FS[*testContext](fstest.MapFS{}, static.WithSubFS("../x"))
		})
	})

	t.Run("inaccessible filesystem", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			static.FS[*testContext](failingFS{})
		})
	})

	t.Run("empty filesystem", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			static.FS[*testContext](fstest.MapFS{})
		})
	})
}

type failingFS struct{}

func (failingFS) Open(string) (fs.File, error) { return nil, fs.ErrInvalid }
