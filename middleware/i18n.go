package middleware

import (
	"context"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/i18n"
)

type translatorContextKey struct{}

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	Skip func(ctx handler.Context) bool
	I18n *i18n.I18n
	// LanguageExtractor picks the language (default: Accept-Language negotiation).
	LanguageExtractor func(ctx handler.Context) string
	Namespace         string
}

// I18n stores a Translator for the negotiated language in the context.
func I18n[C handler.Context](translations *i18n.I18n, namespace string) handler.Middleware[C] {
	return I18nWithConfig[C](I18nConfig{
		I18n:      translations,
		Namespace: namespace,
	})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
func I18nWithConfig[C handler.Context](cfg I18nConfig) handler.Middleware[C] {
	if cfg.I18n == nil {
		panic("i18n middleware: i18n instance is required")
	}
	if cfg.Namespace == "" {
		panic("i18n middleware: namespace is required")
	}
	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(ctx handler.Context) string {
			return i18n.Match(ctx.Request().Header.Get("Accept-Language"), cfg.I18n.Languages())
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			lang := cfg.LanguageExtractor(ctx)
			if lang == "" {
				lang = cfg.I18n.DefaultLanguage()
			}

			ctx.SetValue(translatorContextKey{}, i18n.NewTranslator(cfg.I18n, lang, cfg.Namespace))
			return next(ctx)
		}
	}
}

// GetTranslator returns the translator stored by I18n.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	t, ok := ctx.Value(translatorContextKey{}).(*i18n.Translator)
	return t, ok
}
