package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/logger"
)

// shared is the state common to a router and all of its groups.
type shared[C handler.Context] struct {
	root         *mux.Router
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
}

// muxRouter is the Router implementation on top of gorilla/mux.
type muxRouter[C handler.Context] struct {
	shared      *shared[C]
	middlewares []handler.Middleware[C]
	hasRoutes   bool
}

func newMux[C handler.Context](opts ...Option[C]) *muxRouter[C] {
	m := &muxRouter[C]{
		shared: &shared[C]{
			root:         mux.NewRouter(),
			errorHandler: defaultErrorHandler[C],
			logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.shared.newContext == nil {
		m.shared.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.shared.root.NotFoundHandler = m.serve(handler.Chain(errorResponse[C](ErrNotFound), m.middlewares...))
	m.shared.root.MethodNotAllowedHandler = m.serve(handler.Chain(errorResponse[C](ErrMethodNotAllowed), m.middlewares...))

	return m
}

func errorResponse[C handler.Context](err error) handler.HandlerFunc[C] {
	return func(C) handler.Response {
		return func(http.ResponseWriter, *http.Request) error {
			return err
		}
	}
}

// ServeHTTP implements http.Handler.
func (m *muxRouter[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.shared.root.ServeHTTP(w, r)
}

// Get registers a handler for GET requests.
func (m *muxRouter[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodGet)
}

// Post registers a handler for POST requests.
func (m *muxRouter[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodPost)
}

// Handle registers a handler for all HTTP methods.
func (m *muxRouter[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h)
}

// Method registers a handler for one or more HTTP methods.
func (m *muxRouter[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}
	normalized := make([]string, 0, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method == "" {
			panic(fmt.Errorf("%w: empty method", ErrInvalidMethod))
		}
		if !slices.Contains(normalized, method) {
			normalized = append(normalized, method)
		}
	}
	m.handle(pattern, h, normalized...)
}

// Use appends middlewares to the router.
func (m *muxRouter[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.hasRoutes {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// Group creates a router sharing the route table, inheriting the current middlewares.
func (m *muxRouter[C]) Group(fn func(r Router[C])) Router[C] {
	g := &muxRouter[C]{
		shared:      m.shared,
		middlewares: slices.Clone(m.middlewares),
	}
	if fn != nil {
		fn(g)
	}
	return g
}

// NotFound sets the handler for unmatched paths, wrapped with the current middlewares.
func (m *muxRouter[C]) NotFound(h handler.HandlerFunc[C]) {
	m.shared.root.NotFoundHandler = m.serve(handler.Chain(h, m.middlewares...))
}

func (m *muxRouter[C]) handle(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
	m.hasRoutes = true

	route := m.shared.root.Handle(pattern, m.serve(handler.Chain(h, m.middlewares...)))
	if len(methods) > 0 {
		route.Methods(methods...)
	}
}

// serve adapts a typed handler to http.Handler: it builds the context,
// executes the response and routes errors and panics to the error handler.
func (m *muxRouter[C]) serve(h handler.HandlerFunc[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.shared.newContext(ww, r, mux.Vars(r))

		defer func() {
			if p := recover(); p != nil {
				panicErr := &panicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					m.shared.logger.LogAttrs(r.Context(), slog.LevelError, "panic after response written",
						logger.Component("router"),
						logger.Error(panicErr),
						logger.Stack(panicErr.stack),
						logger.Method(r.Method),
						logger.Path(r.URL.Path),
						logger.StatusCode(ww.Status()),
					)
					return
				}
				m.shared.errorHandler(ctx, panicErr)
			}
		}()

		resp := h(ctx)
		if resp == nil {
			m.shared.errorHandler(ctx, ErrNilResponse)
			return
		}

		if err := resp(ww, r); err != nil {
			m.shared.errorHandler(ctx, err)
		}
	})
}
