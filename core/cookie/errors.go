package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrNoSecret         = errors.New("cookie: no secret provided")
	ErrSecretTooShort   = errors.New("cookie: secret must be at least 32 characters long")
	ErrInvalidSignature = errors.New("cookie: signature verification failed")
	ErrCookieNotFound   = errors.New("cookie: not found in request")
	ErrInvalidFormat    = errors.New("cookie: invalid format")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
