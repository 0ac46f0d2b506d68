package response

import (
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

// Redirect creates a 302 Found response.
// For htmx requests it sets HX-Location with 200 OK instead, so the client
// navigates rather than swapping the redirect target into the page.
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectSeeOther creates a 303 See Other response, used after a successful form POST.
func RedirectSeeOther(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectWithStatus creates a redirect with a custom 3xx status code.
// Codes outside the 3xx range fall back to 302.
func RedirectWithStatus(url string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if IsHTMX(r) {
			w.Header().Set(HeaderHXLocation, url)
			w.WriteHeader(http.StatusOK)
			return nil
		}

		if status < 300 || status >= 400 {
			status = http.StatusFound
		}
		http.Redirect(w, r, url, status)
		return nil
	}
}
