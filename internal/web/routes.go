package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/health"
	"github.com/hooly/hooly/core/i18n"
	"github.com/hooly/hooly/core/router"
	"github.com/hooly/hooly/core/session"
	"github.com/hooly/hooly/core/static"
	"github.com/hooly/hooly/internal/account"
	"github.com/hooly/hooly/internal/form"
	"github.com/hooly/hooly/internal/locale"
	"github.com/hooly/hooly/internal/view"
	"github.com/hooly/hooly/middleware"
)

// Config holds the collaborators of the HTTP layer.
type Config struct {
	Logger        *slog.Logger
	I18n          *i18n.I18n
	Sessions      SessionTransport
	Store         session.Store[account.User]
	Authenticator account.Authenticator
	// Development drops HSTS.
	Development bool
}

// NewRouter builds the portal:
//
//	GET  /login, /register          public forms
//	POST /login, /register          submit
//	POST /login/edit, /register/edit clear an edited field's error
//	GET  /dashboard                 protected
//	POST /logout                    protected
//	GET  /health/live, /health/ready
//	GET  /static/*                  embedded stylesheet
//
// Any other path redirects to /login.
func NewRouter(cfg Config) router.Router[*Context] {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Authenticator == nil {
		cfg.Authenticator = account.NewStubAuthenticator()
	}

	h := NewHandlers(cfg.Authenticator, cfg.Sessions, cfg.I18n, cfg.Logger)

	r := router.New[*Context](
		router.WithContextFactory[*Context](NewContext),
		router.WithErrorHandler[*Context](h.ErrorHandler),
		router.WithLogger[*Context](cfg.Logger),
	)

	r.Use(
		middleware.RequestID[*Context](),
		middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{
			Logger: cfg.Logger,
			Skip:   isHealthCheck,
		}),
		middleware.SecurityHeaders[*Context](cfg.Development),
		middleware.BodyLimit[*Context](),
		middleware.I18n[*Context](cfg.I18n, locale.Namespace),
	)

	r.Get("/health/live", health.Liveness[*Context])
	r.Get("/health/ready", health.Readiness[*Context](cfg.Logger, storeCheck(cfg.Store)))
	r.Get("/static/{file:.+}", static.FS[*Context](view.Assets,
		static.WithSubFS("assets"),
		static.WithFSStripPrefix("/static"),
		static.WithCacheControl("public, max-age=86400"),
	))

	r.Group(func(r router.Router[*Context]) {
		r.Use(middleware.Session[*Context, account.User](cfg.Sessions, cfg.Logger))

		r.Group(func(r router.Router[*Context]) {
			r.Use(middleware.RequireGuest[*Context, account.User]())

			for _, kind := range []form.Kind{form.Login, form.Register} {
				r.Get(kind.Path(), h.ShowForm(kind))
				r.Post(kind.Path(), h.SubmitForm(kind))
				r.Post(kind.EditPath(), h.EditField(kind))
			}
		})

		r.Group(func(r router.Router[*Context]) {
			r.Use(middleware.RequireAuth[*Context, account.User]())

			r.Get("/dashboard", h.Dashboard)
			r.Post("/logout", h.SignOut)
		})
	})

	r.NotFound(h.NotFound)

	return r
}

func isHealthCheck(ctx handler.Context) bool {
	return strings.HasPrefix(ctx.Request().URL.Path, "/health/")
}

// storeCheck reports the session store as ready when it answers a lookup.
func storeCheck(store session.Store[account.User]) func(context.Context) error {
	return func(ctx context.Context) error {
		if store == nil {
			return nil
		}
		_, err := store.GetByToken(ctx, "")
		if err == nil || errors.Is(err, session.ErrNotFound) {
			return nil
		}
		return err
	}
}
