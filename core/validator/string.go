package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// emailPattern accepts anything shaped like local@domain.tld.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Required fails for the empty string only; whitespace counts as a value.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidEmail fails unless value looks like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return emailPattern.MatchString(value) },
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when value has fewer than min characters.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

// EqualString fails when value differs from other.
func EqualString(field, value, otherField, other string) Rule {
	return Rule{
		Check: func() bool { return value == other },
		Error: ValidationError{
			Field:             field,
			Message:           "must match " + otherField,
			TranslationKey:    "validation.equal",
			TranslationValues: map[string]any{"field": field, "other": otherField},
		},
	}
}
