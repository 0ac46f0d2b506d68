package view

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

const (
	htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

	// htmxConfig lets htmx swap 422 responses, which carry re-rendered forms.
	htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`
)

//go:embed templates
var templateFS embed.FS

var (
	fragments = template.Must(template.ParseFS(templateFS, "templates/partials.html"))
	pages     = parsePages("auth", "dashboard", "error")
)

// parsePages gives every page its own copy of the layout, since each one
// defines "content".
func parsePages(names ...string) map[string]*template.Template {
	base := template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/partials.html"))
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(template.Must(base.Clone()).ParseFS(templateFS, "templates/pages/"+name+".html"))
		out[name] = t.Lookup("layout")
	}
	return out
}

// document is the data of the layout template.
type document struct {
	Lang       string
	Title      string
	HTMXSrc    string
	HTMXConfig string
	Stylesheet string
	Content    any
}

func page(name string, t Translator, title string, content any) templ.Component {
	return templ.FromGoHTML(pages[name], document{
		Lang:       language(t),
		Title:      title,
		HTMXSrc:    htmxSrc,
		HTMXConfig: htmxConfig,
		Stylesheet: StylesheetPath,
		Content:    content,
	})
}

func language(t Translator) string {
	if l, ok := t.(interface{ Language() string }); ok {
		return l.Language()
	}
	return ""
}
