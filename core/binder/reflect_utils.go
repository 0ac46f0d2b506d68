package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

var stringMapType = reflect.TypeFor[map[string]string]()

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		slice := reflect.MakeSlice(fieldType, len(values), len(values))
		for i, value := range values {
			if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{value}); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(sanitizeStringValue(value))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Bool:
		switch strings.ToLower(value) {
		case "on", "yes", "1", "true":
			field.SetBool(true)
		case "off", "no", "0", "false", "":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

func setPrefixedMap(field reflect.Value, prefix string, values map[string][]string) error {
	if field.Type() != stringMapType {
		return fmt.Errorf("wildcard tag requires map[string]string, got %s", field.Type())
	}

	m := make(map[string]string)
	for key, vals := range values {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || rest == "" || len(vals) == 0 {
			continue
		}
		m[rest] = sanitizeStringValue(vals[0])
	}
	field.Set(reflect.ValueOf(m))
	return nil
}

// sanitizeStringValue drops NUL, CR, LF and other control characters.
func sanitizeStringValue(value string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}

func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}
