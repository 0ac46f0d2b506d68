package app

import (
	"time"

	"github.com/hooly/hooly/core/cookie"
	"github.com/hooly/hooly/core/server"
	"github.com/hooly/hooly/core/session"
	"github.com/hooly/hooly/core/sessiontransport"
)

// Config is the whole application configuration, read from the environment.
type Config struct {
	Cookie    cookie.Config
	Session   session.Config
	Transport sessiontransport.CookieConfig
	Server    server.Config

	AppName         string        `env:"APP_NAME" envDefault:"hooly"`
	Env             string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLanguage string        `env:"I18N_DEFAULT_LANGUAGE" envDefault:"fr"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
