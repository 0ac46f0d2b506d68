package middleware

import (
	"fmt"
	"net/http"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/response"
)

// Common size constants.
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	Skip func(ctx handler.Context) bool

	// MaxSize is the maximum body size in bytes (default: 64KB, plenty for the auth forms).
	MaxSize int64
}

// BodyLimit caps request bodies at 64KB.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithConfig rejects requests whose Content-Length exceeds MaxSize
// with 413 and wraps the body so that reading past the limit fails.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 64 * KB
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			if req.ContentLength > cfg.MaxSize {
				return response.Error(response.ErrRequestEntityTooLarge.WithMessage(
					fmt.Sprintf("request body too large: %d bytes, limit %d", req.ContentLength, cfg.MaxSize)))
			}

			if req.Body != nil && req.Body != http.NoBody {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, cfg.MaxSize)
			}

			return next(ctx)
		}
	}
}
