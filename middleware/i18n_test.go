package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/i18n"
	"github.com/hooly/hooly/core/response"
	"github.com/hooly/hooly/core/router"
	"github.com/hooly/hooly/middleware"
)

func newTestI18n(t *testing.T) *i18n.I18n {
	t.Helper()

	tr, err := i18n.New(
		i18n.WithDefaultLanguage("fr"),
		i18n.WithTranslations("fr", "auth", map[string]any{"title": "Créer un compte"}),
		i18n.WithTranslations("en", "auth", map[string]any{"title": "Create an account"}),
	)
	require.NoError(t, err)
	return tr
}

func TestI18n(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		acceptLanguage string
		wantLang       string
		wantTitle      string
	}{
		{"no header uses default", "", "fr", "Créer un compte"},
		{"english", "en-US,en;q=0.9", "en", "Create an account"},
		{"french region", "fr-CA", "fr", "Créer un compte"},
		{"unsupported falls back", "de-DE", "fr", "Créer un compte"},
		{"quality order", "de;q=1.0, en;q=0.5", "en", "Create an account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New[*router.Context]()
			r.Use(middleware.I18n[*router.Context](newTestI18n(t), "auth"))
			r.Get("/", func(ctx *router.Context) handler.Response {
				tr, ok := middleware.GetTranslator(ctx)
				require.True(t, ok)
				assert.Equal(t, tt.wantLang, tr.Language())
				return response.String(tr.T("title"))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantTitle, w.Body.String())
		})
	}
}

func TestI18nConfigPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { middleware.I18nWithConfig[*router.Context](middleware.I18nConfig{Namespace: "auth"}) })
	assert.Panics(t, func() { middleware.I18nWithConfig[*router.Context](middleware.I18nConfig{I18n: newTestI18n(t)}) })
}
