package view

import (
	"github.com/a-h/templ"

	"github.com/hooly/hooly/internal/form"
)

// Translator renders user-facing messages.
type Translator = form.Translator

// FormPage is the data for the login and register pages.
type FormPage struct {
	Kind  form.Kind
	State form.State
	T     Translator
}

var inputTypes = map[string]string{
	"email":           "email",
	"password":        "password",
	"confirmPassword": "password",
	"foodTruckName":   "text",
}

type errorSlot struct {
	ID      string
	Marker  string
	Message string
}

type fieldData struct {
	Name  string
	Label string
	Type  string
	Value string
	Error errorSlot
}

type formData struct {
	ID              string
	Action          string
	EditPath        string
	Banner          string
	BannerMarker    string
	Fields          []fieldData
	SubmitLabel     string
	SubmittingLabel string
}

type authContent struct {
	Title     string
	Form      formData
	Prompt    string
	LinkPath  string
	LinkLabel string
}

// FieldErrorID is the element id of field's error slot.
func FieldErrorID(field string) string {
	return "error-" + field
}

func newErrorSlot(field, message string) errorSlot {
	return errorSlot{ID: FieldErrorID(field), Marker: form.ErrorFieldPrefix + field, Message: message}
}

// FieldError renders field's message together with the hidden marker that
// lets the next request know the error is displayed.
func FieldError(field, message string) templ.Component {
	return templ.FromGoHTML(fragments.Lookup("field_error"), newErrorSlot(field, message))
}

// LoginPage is the sign-in screen.
func LoginPage(p FormPage) templ.Component {
	return authPage(p, "login.no_account", form.Register.Path(), "login.register_link")
}

// RegisterPage is the sign-up screen.
func RegisterPage(p FormPage) templ.Component {
	return authPage(p, "register.has_account", form.Login.Path(), "register.login_link")
}

func authPage(p FormPage, promptKey, linkPath, linkKey string) templ.Component {
	title := p.T.T(string(p.Kind) + ".title")
	return page("auth", p.T, title, authContent{
		Title:     title,
		Form:      newFormData(p),
		Prompt:    p.T.T(promptKey),
		LinkPath:  linkPath,
		LinkLabel: p.T.T(linkKey),
	})
}

func newFormData(p FormPage) formData {
	kind := string(p.Kind)
	fields := make([]fieldData, 0, len(p.Kind.Fields()))
	for _, name := range p.Kind.Fields() {
		fields = append(fields, fieldData{
			Name:  name,
			Label: p.T.T("field." + name),
			Type:  inputTypes[name],
			Value: p.State.Value(name),
			Error: newErrorSlot(name, p.State.Error(name)),
		})
	}
	return formData{
		ID:              kind + "-form",
		Action:          p.Kind.Path(),
		EditPath:        p.Kind.EditPath(),
		Banner:          p.State.Submit,
		BannerMarker:    form.SubmitErrorField,
		Fields:          fields,
		SubmitLabel:     p.T.T(kind + ".submit"),
		SubmittingLabel: p.T.T("submitting"),
	}
}
