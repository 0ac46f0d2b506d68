package form

import "maps"

// State is what a rendered form shows: the typed values, one error per
// field and the submission banner.
type State struct {
	Values map[string]string
	Errors map[string]string
	Submit string
}

func newState(fields []string) State {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f] = ""
	}
	return State{
		Values: values,
		Errors: make(map[string]string),
	}
}

// Value returns the current value of field.
func (s State) Value(field string) string {
	return s.Values[field]
}

// Error returns the message shown under field, or "".
func (s State) Error(field string) string {
	return s.Errors[field]
}

// HasErrors reports whether any field or the banner carries a message.
func (s State) HasErrors() bool {
	return len(s.Errors) > 0 || s.Submit != ""
}

// Edit records a new value for field and clears that field's error, whatever
// the value. Other errors and the banner are left alone.
func (s *State) Edit(field, value string) {
	s.Values[field] = value
	delete(s.Errors, field)
}

func (s State) clone() State {
	return State{
		Values: maps.Clone(s.Values),
		Errors: maps.Clone(s.Errors),
		Submit: s.Submit,
	}
}
