package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse loads the embedded page template set. A malformed template is a
// programming error and panics at startup.
func Parse() *template.Template {
	return template.Must(template.New("pages").ParseFS(files, "*.html"))
}
