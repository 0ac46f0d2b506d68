package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	Skip func(ctx handler.Context) bool

	// Logger receives one record per request (default: discard).
	Logger *slog.Logger

	// LogLevel for successful requests (default: info).
	LogLevel slog.Level

	// SlowRequestThreshold logs slower requests at warn level (default: 5s).
	SlowRequestThreshold time.Duration

	// Component name attached to every record (default: http).
	Component string
}

// Logging logs one line per request.
func Logging[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig logs method, path, status, size and latency after the
// response has been written. 4xx responses log at warn, 5xx at error.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
				err := resp(wrapped, r)

				duration := time.Since(start)
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(wrapped.status),
					logger.BytesOut(wrapped.size),
					logger.Latency(duration),
				}

				level := cfg.LogLevel
				switch {
				case err != nil || wrapped.status >= http.StatusInternalServerError:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case wrapped.status >= http.StatusBadRequest:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(ctx, level, "http request", attrs...)
				return err
			}
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	size        int64
	wroteHeader bool
}

func (rw *statusRecorder) WriteHeader(status int) {
	if !rw.wroteHeader {
		rw.status = status
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += int64(n)
	return n, err
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
