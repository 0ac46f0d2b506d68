package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ErrNotStructPointer is returned by ValidateStruct for anything but a pointer to a struct.
var ErrNotStructPointer = errors.New("validator: must pass a pointer to struct")

// ValidatorFunc builds a Rule for a tagged field. parent is the enclosing struct,
// for rules that compare fields.
type ValidatorFunc func(field string, value, parent reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"email":    emailValidator,
		"min":      minValidator,
		"eqfield":  eqFieldValidator,
	}
)

// RegisterValidator adds or replaces a tag rule.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates the string fields of a struct from their `validate` tags.
//
//	type LoginInput struct {
//		Email    string `form:"email" validate:"required;email"`
//		Password string `form:"password" validate:"required"`
//	}
//
// Rules are separated by ";" and take parameters after ":" (min:8, eqfield:Password).
// Errors are keyed by the `form` tag name when present, the Go field name otherwise.
// Only the first failing rule per field is reported.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	rv = rv.Elem()
	rt := rv.Type()

	registryMu.RLock()
	defer registryMu.RUnlock()

	var rules []Rule
	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag := sf.Tag.Get("validate")
		if !sf.IsExported() || tag == "" || tag == "-" {
			continue
		}

		name := fieldName(sf)
		for ruleStr := range strings.SplitSeq(tag, ";") {
			ruleName, paramStr, _ := strings.Cut(strings.TrimSpace(ruleStr), ":")
			fn, ok := registry[strings.TrimSpace(ruleName)]
			if !ok {
				continue
			}

			var params []string
			if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
				for p := range strings.SplitSeq(paramStr, ",") {
					params = append(params, strings.TrimSpace(p))
				}
			}
			rules = append(rules, fn(name, rv.Field(i), rv, params))
		}
	}

	return Apply(rules...)
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("form"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func pass() Rule { return Rule{Check: func() bool { return true }} }

func requiredValidator(field string, value, _ reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{
			Check: func() bool { return !value.IsZero() },
			Error: Required(field, "").Error,
		}
	}
	return Required(field, value.String())
}

func emailValidator(field string, value, _ reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return ValidEmail(field, value.String())
}

func minValidator(field string, value, _ reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) == 0 {
		return pass()
	}
	min, err := strconv.Atoi(params[0])
	if err != nil {
		return pass()
	}
	return MinLenString(field, value.String(), min)
}

func eqFieldValidator(field string, value, parent reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) == 0 {
		return pass()
	}
	other := parent.FieldByName(params[0])
	if !other.IsValid() || other.Kind() != reflect.String {
		return pass()
	}
	otherName := params[0]
	if sf, ok := parent.Type().FieldByName(params[0]); ok {
		otherName = fieldName(sf)
	}
	return EqualString(field, value.String(), otherName, other.String())
}
