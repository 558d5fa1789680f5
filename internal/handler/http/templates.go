package http

import (
	"embed"
	"fmt"
	"html/template"
)

const layoutTemplate = "layout"

//go:embed templates/*.html
var templatesFS embed.FS

func parsePages() (*template.Template, error) {
	pages, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return pages, nil
}
