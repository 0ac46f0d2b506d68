package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

var (
	ErrEmptyLanguage  = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
)

// I18n holds flattened translations per language and namespace.
// It is immutable after creation and safe for concurrent use.
type I18n struct {
	// key format: "lang:namespace:key.path"
	translations map[string]string

	defaultLang string
	extraLangs  []string

	// languages lists the default language first, then the others sorted.
	languages []string

	missingKeyHandler func(lang, namespace, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	langs := slices.DeleteFunc(slices.Clone(i.extraLangs), func(l string) bool { return l == i.defaultLang })
	slices.Sort(langs)
	i.languages = append([]string{i.defaultLang}, slices.Compact(langs)...)

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages declares additional supported languages.
// Languages with translations are registered automatically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang != "" {
				i.extraLangs = append(i.extraLangs, lang)
			}
		}
		return nil
	}
}

// WithMissingKeyHandler sets a function called when a key is found in neither
// the requested nor the default language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithTranslations loads translations for a language and namespace.
// Nested maps are flattened into dot-separated keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		for key, value := range flattenTranslations(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		i.extraLangs = append(i.extraLangs, lang)
		return nil
	}
}

// T translates key, falling back to the default language and finally to the key itself.
// Placeholders use the %{name} format.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if translation, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return replacePlaceholdersWithMerge(translation, placeholders...)
	}

	if lang != i.defaultLang {
		if translation, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return replacePlaceholdersWithMerge(translation, placeholders...)
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Languages returns the supported languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return template
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}
