package form

import "errors"

var (
	// ErrInvalid is returned by Submit when a field fails validation.
	ErrInvalid = errors.New("form: invalid input")

	// ErrSubmitInProgress is returned by Submit while a previous action runs.
	ErrSubmitInProgress = errors.New("form: submission already in progress")

	// ErrSubmitFailed wraps the error returned by the submit action.
	ErrSubmitFailed = errors.New("form: submission failed")
)
