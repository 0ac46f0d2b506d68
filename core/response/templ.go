package response

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/hooly/hooly/core/handler"
)

// Templ creates an HTML response from a templ component with 200 OK status.
// The component is rendered with the request context.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates an HTML response from a templ component with a custom status code.
// The component is buffered first, so a render error leaves the response untouched
// for the error handler.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	if component == nil {
		return Error(ErrInternalServerError.WithMessage("nil templ component"))
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		var buf bytes.Buffer
		if err := component.Render(r.Context(), &buf); err != nil {
			return fmt.Errorf("templ component render error: %w", err)
		}

		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, err := w.Write(buf.Bytes())
		return err
	}
}
