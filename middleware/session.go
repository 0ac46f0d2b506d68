package middleware

import (
	"io"
	"log/slog"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/response"
	"github.com/hooly/hooly/core/session"
)

type sessionKey struct{}

// SessionTransport loads a session for a request and writes it back.
type SessionTransport[User any] interface {
	Load(ctx handler.Context) (session.Session[User], error)
	Store(ctx handler.Context, sess session.Session[User]) error
}

// SessionConfig configures the session middleware.
type SessionConfig[C handler.Context, User any] struct {
	Skip      func(ctx C) bool
	Transport SessionTransport[User]
	Logger    *slog.Logger
	// ErrorHandler builds the response when loading or storing fails
	// (default: 500 error response).
	ErrorHandler func(ctx C, err error) handler.Response
}

// Session loads the browser's session before the handler and stores the
// session found in the context afterwards. Handlers replace it with SetSession.
func Session[C handler.Context, User any](transport SessionTransport[User], log *slog.Logger) handler.Middleware[C] {
	return SessionWithConfig(SessionConfig[C, User]{
		Transport: transport,
		Logger:    log,
	})
}

// SessionWithConfig creates a session middleware with custom configuration.
func SessionWithConfig[C handler.Context, User any](cfg SessionConfig[C, User]) handler.Middleware[C] {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ C, err error) handler.Response {
			return response.Error(response.ErrInternalServerError.WithError(err))
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			sess, err := cfg.Transport.Load(ctx)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return response.Error(ctxErr)
				}
				cfg.Logger.ErrorContext(ctx, "failed to load session", "error", err)
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(sessionKey{}, sess)

			resp := next(ctx)

			current, ok := GetSession[User](ctx)
			if !ok {
				return resp
			}

			if err := cfg.Transport.Store(ctx, current); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to store session", "error", err)
				return cfg.ErrorHandler(ctx, err)
			}

			return resp
		}
	}
}

// GetSession returns the request's session.
func GetSession[User any](ctx handler.Context) (session.Session[User], bool) {
	if ctx == nil {
		return session.Session[User]{}, false
	}
	sess, ok := ctx.Value(sessionKey{}).(session.Session[User])
	return sess, ok
}

// MustGetSession is GetSession for handlers mounted behind Session.
func MustGetSession[User any](ctx handler.Context) session.Session[User] {
	sess, ok := GetSession[User](ctx)
	if !ok {
		panic("session not found in context")
	}
	return sess
}

// SetSession replaces the request's session; the middleware stores it after the handler returns.
func SetSession[User any](ctx handler.Context, sess session.Session[User]) {
	ctx.SetValue(sessionKey{}, sess)
}
