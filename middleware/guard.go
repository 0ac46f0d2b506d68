package middleware

import (
	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/response"
	"github.com/hooly/hooly/internal/guard"
)

// Guard runs decide before the handler and redirects when it does not allow
// the request. decide usually reads the session placed by Session.
func Guard[C handler.Context](decide func(ctx C) guard.Decision) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if d := decide(ctx); !d.Allowed() {
				return response.Redirect(d.Location())
			}
			return next(ctx)
		}
	}
}

// Authenticated reports whether the session in ctx is signed in.
// It is false when no session middleware ran.
func Authenticated[User any](ctx handler.Context) bool {
	sess, ok := GetSession[User](ctx)
	return ok && sess.IsAuthenticated()
}

// RequireAuth admits signed-in sessions only.
func RequireAuth[C handler.Context, User any]() handler.Middleware[C] {
	return Guard(func(ctx C) guard.Decision {
		return guard.Protected(Authenticated[User](ctx))
	})
}

// RequireGuest admits anonymous sessions only.
func RequireGuest[C handler.Context, User any]() handler.Middleware[C] {
	return Guard(func(ctx C) guard.Decision {
		return guard.Public(Authenticated[User](ctx))
	})
}
