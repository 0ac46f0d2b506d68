package form

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/hooly/hooly/core/binder"
	"github.com/hooly/hooly/core/i18n"
	"github.com/hooly/hooly/core/validator"
)

// Hidden inputs carrying the displayed errors between requests.
const (
	ErrorFieldPrefix = "error."
	SubmitErrorField = ErrorFieldPrefix + submitErrorKey
	EditedFieldName  = "_field"

	submitErrorKey = "_submit"
)

// Translator renders user-facing messages.
type Translator interface {
	T(key string, placeholders ...i18n.M) string
}

// Action is the work done once the form is valid.
type Action func(ctx context.Context) error

// Controller drives one form through mount, edits and submission.
// It lives for a single request.
type Controller struct {
	kind Kind
	tr   Translator

	mu      sync.Mutex
	state   State
	loading bool
}

// New mounts an empty form.
func New(kind Kind, tr Translator) *Controller {
	return &Controller{
		kind:  kind,
		tr:    tr,
		state: newState(kind.Fields()),
	}
}

type payload struct {
	Values map[string]string `form:"*"`
	Errors map[string]string `form:"error.*"`
	Field  string            `form:"_field"`
}

// FromRequest restores the form a browser posted: its values and the error
// markers rendered with it. The edited field name comes from HX-Trigger-Name
// or the _field value and is returned alongside.
func FromRequest(kind Kind, tr Translator, r *http.Request) (*Controller, string, error) {
	var p payload
	if err := binder.Form()(r, &p); err != nil {
		return nil, "", err
	}

	c := New(kind, tr)
	for _, f := range kind.Fields() {
		c.state.Values[f] = p.Values[f]
		if msg := p.Errors[f]; msg != "" {
			c.state.Errors[f] = msg
		}
	}
	c.state.Submit = p.Errors[submitErrorKey]

	field := r.Header.Get("HX-Trigger-Name")
	if field == "" {
		field = p.Field
	}
	return c, field, nil
}

// Kind returns which form this is.
func (c *Controller) Kind() Kind {
	return c.kind
}

// State returns a snapshot for rendering.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Loading reports whether a submit action is running.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Value returns the current value of field.
func (c *Controller) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Value(field)
}

// Edit updates one field and clears its error. Unknown fields are ignored.
func (c *Controller) Edit(field, value string) {
	if !c.kind.has(field) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Edit(field, value)
}

// Validate recomputes every field error from the current values and clears
// the banner. It reports whether the form is valid.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validate()
}

func (c *Controller) validate() bool {
	c.state.Errors = make(map[string]string)
	c.state.Submit = ""

	err := validator.ValidateStruct(c.kind.input(c.state.Values))
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.state.Submit = err.Error()
		return false
	}
	for _, ve := range verrs {
		c.state.Errors[ve.Field] = c.message(ve)
	}
	return false
}

// Submit validates and, when valid, runs action. A failing action leaves a
// single banner built from its error. The loading flag is held for the
// duration of action and a concurrent Submit is rejected.
func (c *Controller) Submit(ctx context.Context, action Action) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	if !c.validate() {
		c.mu.Unlock()
		return ErrInvalid
	}
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	if err := action(ctx); err != nil {
		c.mu.Lock()
		c.state.Submit = c.tr.T(string(c.kind)+".failed", i18n.M{"message": err.Error()})
		c.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return nil
}

// message picks the most specific translation: rule and field, then rule,
// then the validator's own message.
func (c *Controller) message(ve validator.ValidationError) string {
	vals := i18n.M(ve.TranslationValues)
	for _, key := range []string{ve.TranslationKey + "." + ve.Field, ve.TranslationKey} {
		if msg := c.tr.T(key, vals); msg != key {
			return msg
		}
	}
	return ve.Message
}
