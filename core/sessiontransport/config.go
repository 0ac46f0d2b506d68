package sessiontransport

import (
	"github.com/hooly/hooly/core/cookie"
	"github.com/hooly/hooly/core/session"
)

// CookieConfig provides environment-based configuration for the cookie transport.
type CookieConfig struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
}

// NewCookieFromConfig creates a cookie transport from configuration.
func NewCookieFromConfig[User any](cfg CookieConfig, mgr *session.Manager[User], cookieMgr *cookie.Manager) *Cookie[User] {
	name := cfg.CookieName
	if name == "" {
		name = "__session"
	}
	return NewCookie(mgr, cookieMgr, name)
}
