package static

import (
	"io/fs"
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

type fsConfig struct {
	fs           fs.FS
	stripPrefix  string
	subPath      string
	cacheControl string
}

// FSOption configures FS.
type FSOption func(*fsConfig)

// WithFSStripPrefix removes prefix from the URL path before the file lookup,
// so "/static/app.css" resolves to "app.css" with prefix "/static".
func WithFSStripPrefix(prefix string) FSOption {
	return func(c *fsConfig) {
		c.stripPrefix = prefix
	}
}

// WithSubFS serves only the given subdirectory of the filesystem.
func WithSubFS(path string) FSOption {
	return func(c *fsConfig) {
		c.subPath = path
	}
}

// WithCacheControl sets the Cache-Control header on served files.
func WithCacheControl(value string) FSOption {
	return func(c *fsConfig) {
		c.cacheControl = value
	}
}

// FS creates a handler serving files from fsys, typically an embed.FS.
// It panics at startup if the sub-path is invalid or the root cannot be opened.
func FS[C handler.Context](fsys fs.FS, opts ...FSOption) handler.HandlerFunc[C] {
	config := &fsConfig{fs: fsys}
	for _, opt := range opts {
		opt(config)
	}

	if config.subPath != "" {
		sub, err := fs.Sub(fsys, config.subPath)
		if err != nil {
			panic("static.FS: invalid sub-path '" + config.subPath + "': " + err.Error())
		}
		config.fs = sub
	}

	if _, err := config.fs.Open("."); err != nil {
		panic("static.FS: filesystem is not accessible: " + err.Error())
	}

	fileServer := http.FileServer(neuteredFileSystem{fs: http.FS(config.fs)})
	if config.stripPrefix != "" {
		fileServer = http.StripPrefix(config.stripPrefix, fileServer)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if config.cacheControl != "" {
				w = &cacheControlWriter{ResponseWriter: w, value: config.cacheControl}
			}
			fileServer.ServeHTTP(w, r)
			return nil
		}
	}
}

// cacheControlWriter sets Cache-Control on successful responses only.
type cacheControlWriter struct {
	http.ResponseWriter
	value       string
	wroteHeader bool
}

func (w *cacheControlWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		switch code {
		case http.StatusOK, http.StatusPartialContent, http.StatusNotModified:
			w.Header().Set("Cache-Control", w.value)
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *cacheControlWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *cacheControlWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
