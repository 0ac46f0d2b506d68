// Package i18n provides key-based translations with placeholder substitution
// and Accept-Language negotiation.
//
//	tr, err := i18n.New(
//		i18n.WithDefaultLanguage("fr"),
//		i18n.WithTranslations("fr", "auth", map[string]any{
//			"validation": map[string]any{"email_required": "Email requis"},
//		}),
//		i18n.WithTranslations("en", "auth", map[string]any{
//			"validation": map[string]any{"email_required": "Email is required"},
//		}),
//	)
//	tr.T("en", "auth", "validation.email_required") // "Email is required"
//
// Missing keys fall back to the default language, then to the key itself.
// Match resolves an Accept-Language header against Languages().
package i18n
