// Package web holds the HTML templates served by the portfolio.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates parses the embedded "index" and "404" templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
