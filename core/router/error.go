package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hooly/hooly/core/handler"
)

var (
	ErrNoContextFactory = errors.New("router: no context factory provided")
	ErrNilResponse      = errors.New("router: nil response")
	ErrInvalidMethod    = errors.New("router: invalid http method")
	ErrInvalidPattern   = errors.New("router: invalid route path pattern")

	ErrNotFound         = statusError{status: http.StatusNotFound, msg: "router: not found"}
	ErrMethodNotAllowed = statusError{status: http.StatusMethodNotAllowed, msg: "router: method not allowed"}
)

// statusError is a routing error that carries its HTTP status.
type statusError struct {
	status int
	msg    string
}

func (e statusError) Error() string   { return e.msg }
func (e statusError) StatusCode() int { return e.status }

type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error as plain text.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any    { return e.value }
func (e *panicError) Stack() []byte { return e.stack }

// Unwrap lets errors.Is/As see a panicked error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
