package handler

import "net/http"

// Response renders an HTTP response: headers, status code and body.
// A non-nil error is passed to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request with a typed context and returns the response to render.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors returned by responses or raised by the router.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler to add cross-cutting behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain wraps h with the given middlewares. The first middleware is the outermost one.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
