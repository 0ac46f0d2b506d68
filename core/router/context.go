package router

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Context is the default handler.Context implementation.
// Application contexts usually embed it.
type Context struct {
	ctx    context.Context
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string

	mu     sync.RWMutex
	values map[any]any
}

// NewContext creates a context for one request.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{
		ctx:    r.Context(),
		w:      w,
		r:      r,
		params: params,
	}
}

func (c *Context) Request() *http.Request              { return c.r }
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns a path parameter, or "" when absent.
func (c *Context) Param(key string) string {
	return c.params[key]
}

// SetValue stores a request-scoped value readable through Value.
func (c *Context) SetValue(key, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Value returns values set with SetValue first, then falls back to the request context.
func (c *Context) Value(key any) any {
	c.mu.RLock()
	val, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return val
	}
	return c.ctx.Value(key)
}

func (c *Context) Deadline() (deadline time.Time, ok bool) { return c.ctx.Deadline() }
func (c *Context) Done() <-chan struct{}                   { return c.ctx.Done() }
func (c *Context) Err() error                              { return c.ctx.Err() }
