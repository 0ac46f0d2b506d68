package guard

// Navigation targets used by the guards.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decision is the outcome of a guard: either allow the request or redirect it.
// The zero value allows.
type Decision struct {
	location string
}

// Allow lets the request through.
var Allow = Decision{}

// RedirectTo sends the browser to path instead.
func RedirectTo(path string) Decision {
	return Decision{location: path}
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.location == ""
}

// Location returns the redirect target, or "" for Allow.
func (d Decision) Location() string {
	return d.location
}

// Protected admits authenticated visitors only.
func Protected(authenticated bool) Decision {
	if authenticated {
		return Allow
	}
	return RedirectTo(LoginPath)
}

// Public admits anonymous visitors only; signed-in users go to the dashboard.
func Public(authenticated bool) Decision {
	if !authenticated {
		return Allow
	}
	return RedirectTo(DashboardPath)
}

// Fallback handles paths no route declares.
func Fallback() Decision {
	return RedirectTo(LoginPath)
}
