package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/hooly/hooly/core/config"
	"github.com/hooly/hooly/core/cookie"
	"github.com/hooly/hooly/core/i18n"
	"github.com/hooly/hooly/core/logger"
	"github.com/hooly/hooly/core/server"
	"github.com/hooly/hooly/core/session"
	"github.com/hooly/hooly/core/sessiontransport"
	"github.com/hooly/hooly/internal/account"
	"github.com/hooly/hooly/internal/locale"
	"github.com/hooly/hooly/internal/web"
	"github.com/hooly/hooly/middleware"
)

// App owns every long-lived component of the portal.
type App struct {
	config    Config
	hasConfig bool

	logger   *slog.Logger
	auth     account.Authenticator
	store    session.Store[account.User]
	sessions *session.Manager[account.User]
	cookie   *cookie.Manager
	i18n     *i18n.I18n
	server   *server.Server
	handler  http.Handler
}

// Option customizes an App.
type Option func(*App) error

// New builds the application. Without WithConfig the configuration is read
// from the environment and an optional .env file.
func New(opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.hasConfig {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}
	cfg := app.config

	if app.logger == nil {
		app.logger = newLogger(cfg)
	}
	if app.auth == nil {
		app.auth = account.NewStubAuthenticator()
	}
	if app.store == nil {
		app.store = session.NewMemoryStore[account.User]()
	}

	app.sessions = session.NewManagerFromConfig(app.store, cfg.Session)

	if app.cookie == nil {
		cm, err := cookie.NewFromConfig(cfg.Cookie)
		if err != nil {
			return nil, err
		}
		app.cookie = cm
	}

	translations, err := locale.New(cfg.DefaultLanguage, i18n.WithMissingKeyHandler(func(lang, ns, key string) {
		app.logger.Warn("missing translation", logger.Component("i18n"), slog.String("lang", lang), slog.String("key", ns+":"+key))
	}))
	if err != nil {
		return nil, err
	}
	app.i18n = translations

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.handler = web.NewRouter(web.Config{
		Logger:        app.logger,
		I18n:          app.i18n,
		Sessions:      sessiontransport.NewCookieFromConfig(cfg.Transport, app.sessions, app.cookie),
		Store:         app.store,
		Authenticator: app.auth,
		Development:   !cfg.IsProduction(),
	})

	return app, nil
}

// Handler returns the HTTP handler of the portal.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves HTTP and sweeps expired sessions until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("starting",
		logger.Component("app"), slog.String("addr", a.config.Server.Addr), slog.String("env", a.config.Env))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.handler))
	if a.config.CleanupInterval > 0 {
		g.Go(a.sessions.RunCleanup(ctx, a.config.CleanupInterval))
	}
	return g.Wait()
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.IsProduction() {
		opts = []logger.Option{logger.WithProduction(cfg.AppName)}
	}
	opts = append(opts,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)
	return logger.New(opts...)
}

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg Config) Option {
	return func(app *App) error {
		app.config = cfg
		app.hasConfig = true
		return nil
	}
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(app *App) error {
		if l == nil {
			return errors.New("app: logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithAuthenticator replaces the accept-all authenticator.
func WithAuthenticator(auth account.Authenticator) Option {
	return func(app *App) error {
		if auth == nil {
			return errors.New("app: authenticator cannot be nil")
		}
		app.auth = auth
		return nil
	}
}

// WithSessionStore replaces the in-memory session store.
func WithSessionStore(store session.Store[account.User]) Option {
	return func(app *App) error {
		if store == nil {
			return errors.New("app: session store cannot be nil")
		}
		app.store = store
		return nil
	}
}

// WithServer sets the HTTP server.
func WithServer(s *server.Server) Option {
	return func(app *App) error {
		if s == nil {
			return errors.New("app: server cannot be nil")
		}
		app.server = s
		return nil
	}
}

// WithCookieManager sets the cookie manager.
func WithCookieManager(cm *cookie.Manager) Option {
	return func(app *App) error {
		if cm == nil {
			return errors.New("app: cookie manager cannot be nil")
		}
		app.cookie = cm
		return nil
	}
}
