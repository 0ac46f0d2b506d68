package middleware

import (
	"maps"
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

// SecurityHeadersConfig lists the headers added to every response.
// Empty fields are omitted.
type SecurityHeadersConfig struct {
	Skip func(ctx handler.Context) bool

	ContentTypeOptions      string
	FrameOptions            string
	ReferrerPolicy          string
	ContentSecurityPolicy   string
	StrictTransportSecurity string
	CustomHeaders           map[string]string

	// IsDevelopment drops HSTS.
	IsDevelopment bool
}

// PageSecurity suits the server-rendered auth pages: no framing, scripts
// from self and the htmx CDN only.
var PageSecurity = SecurityHeadersConfig{
	ContentTypeOptions:      "nosniff",
	FrameOptions:            "DENY",
	ReferrerPolicy:          "strict-origin-when-cross-origin",
	ContentSecurityPolicy:   "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; frame-ancestors 'none'; form-action 'self'",
	StrictTransportSecurity: "max-age=31536000; includeSubDomains",
}

// SecurityHeaders applies PageSecurity.
func SecurityHeaders[C handler.Context](isDevelopment bool) handler.Middleware[C] {
	cfg := PageSecurity
	cfg.IsDevelopment = isDevelopment
	return SecurityHeadersWithConfig[C](cfg)
}

// SecurityHeadersWithConfig creates a security headers middleware with custom configuration.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string)
	for name, value := range map[string]string{
		"X-Content-Type-Options":    cfg.ContentTypeOptions,
		"X-Frame-Options":           cfg.FrameOptions,
		"Referrer-Policy":           cfg.ReferrerPolicy,
		"Content-Security-Policy":   cfg.ContentSecurityPolicy,
		"Strict-Transport-Security": cfg.StrictTransportSecurity,
	} {
		if value != "" {
			headers[name] = value
		}
	}
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				for name, value := range headers {
					w.Header().Set(name, value)
				}
				return resp(w, r)
			}
		}
	}
}
