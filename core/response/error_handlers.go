package response

import (
	"errors"
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// AsHTTPError converts any error into an HTTPError.
// HTTPError values pass through; errors implementing StatusCode() map to the
// matching predefined error; everything else becomes a 500.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr.WithError(err)
}

// ErrorHandler is a plain-text error handler usable as a router fallback.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := AsHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}
