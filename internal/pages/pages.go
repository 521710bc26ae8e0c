package pages

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the parsed page templates.
type Templates struct {
	templates *template.Template
}

// New parses the embedded page templates.
func New() (*Templates, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{templates: templates}, nil
}

// Render executes the named template with the given data.
func (p *Templates) Render(w io.Writer, name string, data interface{}) error {
	return p.templates.ExecuteTemplate(w, name, data)
}
