package web

import (
	"net/http"

	"github.com/hooly/hooly/core/router"
	"github.com/hooly/hooly/core/session"
	"github.com/hooly/hooly/internal/account"
	"github.com/hooly/hooly/middleware"
)

// Context is the request context of every portal handler.
type Context struct {
	*router.Context
}

// NewContext is the router's context factory.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{Context: router.NewContext(w, r, params)}
}

// Session returns the visitor's session, or an anonymous zero session when
// the session middleware did not run.
func (c *Context) Session() session.Session[account.User] {
	sess, _ := middleware.GetSession[account.User](c)
	return sess
}

// IsAuthenticated reports whether the visitor is signed in.
func (c *Context) IsAuthenticated() bool {
	return c.Session().IsAuthenticated()
}
