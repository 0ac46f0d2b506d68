package handler

import (
	"context"
	"net/http"
)

// Context is the request context every handler and middleware receives.
// It extends context.Context with access to the HTTP exchange and
// request-scoped values set by middlewares.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
