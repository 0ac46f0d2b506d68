package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Match picks the best of the available languages for an Accept-Language header.
// It returns "" when the header is empty, unparsable, or matches nothing.
func Match(header string, available []string) string {
	if header == "" || len(available) == 0 {
		return ""
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return ""
	}

	tags := make([]language.Tag, len(available))
	for i, lang := range available {
		tags[i] = language.Make(lang)
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return ""
	}
	return available[index]
}

// ReplacePlaceholders replaces %{name} placeholders with values from placeholders.
// Unknown placeholders are left unchanged.
//
//	ReplacePlaceholders("Login failed: %{message}", M{"message": "timeout"})
//	// "Login failed: timeout"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprintf("%v", value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
