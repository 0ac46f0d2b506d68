package binder

import (
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"
)

// DefaultMaxMemory bounds the in-memory part of a multipart form.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies into a struct using `form` tags.
//
//	type loginInput struct {
//		Email    string            `form:"email"`
//		Password string            `form:"password"`
//		Errors   map[string]string `form:"error.*"`
//	}
//
// A tag ending in ".*" on a map[string]string field collects every value
// whose key starts with the prefix, keyed by the remainder.
// Fields without a tag or tagged "-" are left untouched.
func Form() Binder {
	return func(r *http.Request, v any) error {
		values, err := parseForm(r)
		if err != nil {
			return err
		}
		return bindValues(v, values)
	}
}

func parseForm(r *http.Request) (map[string][]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return r.Form, nil
		}
		return nil, ErrMissingContentType
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return r.Form, nil

	case "multipart/form-data":
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		if r.MultipartForm == nil {
			return map[string][]string{}, nil
		}
		return r.MultipartForm.Value, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func bindValues(v any, values map[string][]string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			continue
		}

		if prefix, ok := strings.CutSuffix(name, "*"); ok {
			if err := setPrefixedMap(field, prefix, values); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, sf.Name, err)
			}
			continue
		}

		fieldValues, exists := values[name]
		if !exists || len(fieldValues) == 0 {
			continue
		}
		if err := setFieldValue(field, sf.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, sf.Name, err)
		}
	}

	return nil
}
