package router

import (
	"log/slog"
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

// Option configures a Router during creation.
type Option[C handler.Context] func(*muxRouter[C])

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *muxRouter[C]) {
		if h != nil {
			m.shared.errorHandler = h
		}
	}
}

// WithMiddleware adds global middlewares, applied to every route and to the NotFound handler.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *muxRouter[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithContextFactory sets the factory building the request context.
// Required for any context type other than *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, map[string]string) C) Option[C] {
	return func(m *muxRouter[C]) {
		m.shared.newContext = f
	}
}

// WithLogger sets the logger used to report panics.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *muxRouter[C]) {
		if logger != nil {
			m.shared.logger = logger
		}
	}
}
