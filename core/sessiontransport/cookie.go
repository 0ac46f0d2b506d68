package sessiontransport

import (
	"fmt"
	"time"

	"github.com/hooly/hooly/core/cookie"
	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/session"
)

// Cookie carries Session.Token in a signed cookie.
type Cookie[User any] struct {
	manager   *session.Manager[User]
	cookieMgr *cookie.Manager
	name      string
}

// NewCookie creates a cookie-based session transport.
func NewCookie[User any](mgr *session.Manager[User], cookieMgr *cookie.Manager, name string) *Cookie[User] {
	return &Cookie[User]{
		manager:   mgr,
		cookieMgr: cookieMgr,
		name:      name,
	}
}

// Load returns the session named by the request cookie.
// A missing, tampered or unknown cookie yields a new anonymous session.
func (c *Cookie[User]) Load(ctx handler.Context) (session.Session[User], error) {
	token, err := c.cookieMgr.GetSigned(ctx.Request(), c.name)
	if err != nil {
		return c.manager.New(ctx)
	}

	sess, err := c.manager.GetByToken(ctx, token)
	if err != nil {
		return c.manager.New(ctx)
	}

	return sess, nil
}

// Store extends the session if due and writes the cookie when the browser
// does not yet hold the current token or the expiration moved.
func (c *Cookie[User]) Store(ctx handler.Context, sess session.Session[User]) error {
	sess, touched, err := c.manager.Touch(ctx, sess)
	if err != nil {
		return err
	}

	current, err := c.cookieMgr.GetSigned(ctx.Request(), c.name)
	if err == nil && current == sess.Token && !touched {
		return nil
	}

	return c.save(ctx, sess)
}

// Authenticate logs user in on sess. The returned session carries a new token;
// the caller stores it back so the cookie gets rewritten.
func (c *Cookie[User]) Authenticate(ctx handler.Context, sess session.Session[User], user User) (session.Session[User], error) {
	return c.manager.Authenticate(ctx, sess, user)
}

// Logout turns sess into an anonymous session with a new token.
func (c *Cookie[User]) Logout(ctx handler.Context, sess session.Session[User]) (session.Session[User], error) {
	return c.manager.Logout(ctx, sess)
}

func (c *Cookie[User]) save(ctx handler.Context, sess session.Session[User]) error {
	until := time.Until(sess.ExpiresAt)
	if until <= 0 {
		return fmt.Errorf("%w: expired %v ago", ErrExpiredSession, -until)
	}

	return c.cookieMgr.SetSigned(ctx.ResponseWriter(), c.name, sess.Token,
		cookie.WithHTTPOnly(true),
		cookie.WithMaxAge(int(until.Seconds())),
	)
}
