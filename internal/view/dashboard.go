package view

import (
	"github.com/a-h/templ"

	"github.com/hooly/hooly/core/i18n"
	"github.com/hooly/hooly/internal/account"
)

type dashboardContent struct {
	Title       string
	Welcome     string
	Truck       string
	LogoutPath  string
	LogoutLabel string
}

type errorContent struct {
	Title     string
	Status    int
	Message   string
	BackPath  string
	BackLabel string
}

// DashboardPage greets the signed-in user.
func DashboardPage(user account.User, t Translator) templ.Component {
	content := dashboardContent{
		Title:       t.T("dashboard.title"),
		Welcome:     t.T("dashboard.welcome", i18n.M{"email": user.Email}),
		LogoutPath:  "/logout",
		LogoutLabel: t.T("dashboard.logout"),
	}
	if user.FoodTruckName != "" {
		content.Truck = t.T("dashboard.truck", i18n.M{"name": user.FoodTruckName})
	}
	return page("dashboard", t, content.Title, content)
}

// ErrorPage reports a failed request.
func ErrorPage(status int, message string, t Translator) templ.Component {
	content := errorContent{
		Title:     t.T("error.title"),
		Status:    status,
		Message:   message,
		BackPath:  "/login",
		BackLabel: t.T("error.back"),
	}
	return page("error", t, content.Title, content)
}
