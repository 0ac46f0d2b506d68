package router

import (
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

// Router registers typed handlers. Route matching is delegated to gorilla/mux.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middlewares. It must be called before any route is registered.
	Use(middlewares ...handler.Middleware[C])
	// Group registers routes sharing extra middlewares without affecting the parent.
	Group(fn func(r Router[C])) Router[C]
	// NotFound sets the handler for requests no route matches.
	NotFound(h handler.HandlerFunc[C])
}

// New creates a router.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
