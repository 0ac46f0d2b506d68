package binder

import "errors"

var (
	// ErrUnsupportedMediaType is returned when the Content-Type is not a form encoding.
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")

	// ErrMissingContentType is returned for a body-carrying request without Content-Type.
	ErrMissingContentType = errors.New("binder: missing content type")

	// ErrFailedToParseForm wraps every parse and conversion failure of the form binder.
	ErrFailedToParseForm = errors.New("binder: failed to parse form data")

	// ErrInvalidTarget is returned when v is not a non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("binder: target must be a non-nil pointer to struct")
)
