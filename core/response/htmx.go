package response

import "net/http"

// HTMX headers used by the portal.
const (
	HeaderHXRequest     = "HX-Request"
	HeaderHXLocation    = "HX-Location"
	HeaderHXTriggerName = "HX-Trigger-Name"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}
