package locale

import "github.com/hooly/hooly/core/i18n"

// Namespace holds every user-facing string of the portal.
const Namespace = "app"

// New loads the French and English catalogues. defaultLang picks the
// language used when the browser asks for none of them.
func New(defaultLang string, opts ...i18n.Option) (*i18n.I18n, error) {
	if defaultLang == "" {
		defaultLang = "fr"
	}
	base := []i18n.Option{
		i18n.WithDefaultLanguage(defaultLang),
		i18n.WithTranslations("fr", Namespace, french),
		i18n.WithTranslations("en", Namespace, english),
	}
	return i18n.New(append(base, opts...)...)
}

var french = map[string]any{
	"app": map[string]any{"name": "Hooly"},
	"field": map[string]any{
		"email":           "Email",
		"password":        "Mot de passe",
		"foodTruckName":   "Nom du Food Truck",
		"confirmPassword": "Confirmer le mot de passe",
	},
	"login": map[string]any{
		"title":         "Welcome to Hooly",
		"submit":        "Se connecter",
		"no_account":    "Pas encore de compte ?",
		"register_link": "Créer un compte",
		"failed":        "Échec de la connexion: %{message}",
	},
	"register": map[string]any{
		"title":       "Créer un compte",
		"submit":      "S'inscrire",
		"has_account": "Déjà un compte ?",
		"login_link":  "Se connecter",
		"failed":      "Erreur lors de l'inscription: %{message}",
	},
	"dashboard": map[string]any{
		"title":   "Tableau de bord",
		"welcome": "Bienvenue, %{email}",
		"truck":   "Food truck : %{name}",
		"logout":  "Se déconnecter",
	},
	"submitting": "Envoi en cours...",
	"error": map[string]any{
		"title": "Une erreur est survenue",
		"back":  "Retour à la connexion",
	},
	"validation": map[string]any{
		"required": map[string]any{
			"email":           "Email requis",
			"password":        "Mot de passe requis",
			"foodTruckName":   "Nom du Food Truck requis",
			"confirmPassword": "Confirmation du mot de passe requise",
		},
		"email": map[string]any{
			"email": "Email invalide",
		},
		"min_length": map[string]any{
			"password": "Le mot de passe doit faire au moins %{min} caractères",
		},
		"equal": map[string]any{
			"confirmPassword": "Les mots de passe ne correspondent pas",
		},
	},
}

var english = map[string]any{
	"app": map[string]any{"name": "Hooly"},
	"field": map[string]any{
		"email":           "Email",
		"password":        "Password",
		"foodTruckName":   "Food truck name",
		"confirmPassword": "Confirm password",
	},
	"login": map[string]any{
		"title":         "Welcome to Hooly",
		"submit":        "Sign in",
		"no_account":    "No account yet?",
		"register_link": "Create an account",
		"failed":        "Login failed: %{message}",
	},
	"register": map[string]any{
		"title":       "Create an account",
		"submit":      "Sign up",
		"has_account": "Already have an account?",
		"login_link":  "Sign in",
		"failed":      "Registration failed: %{message}",
	},
	"dashboard": map[string]any{
		"title":   "Dashboard",
		"welcome": "Welcome, %{email}",
		"truck":   "Food truck: %{name}",
		"logout":  "Sign out",
	},
	"submitting": "Submitting...",
	"error": map[string]any{
		"title": "Something went wrong",
		"back":  "Back to sign in",
	},
	"validation": map[string]any{
		"required": map[string]any{
			"email":           "Email is required",
			"password":        "Password is required",
			"foodTruckName":   "Food truck name is required",
			"confirmPassword": "Please confirm your password",
		},
		"email": map[string]any{
			"email": "Invalid email",
		},
		"min_length": map[string]any{
			"password": "Password must be at least %{min} characters",
		},
		"equal": map[string]any{
			"confirmPassword": "Passwords do not match",
		},
	},
}
