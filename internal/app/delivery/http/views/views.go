// Package views holds the server-rendered pages and their static assets.
package views

import (
	"bytes"
	"embed"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

const (
	layoutFile   = "templates/layout.html"
	layoutName   = "layout"
	templatesDir = "templates/"
)

var pages = []string{
	constvars.TemplateLogin,
	constvars.TemplateSignup,
	constvars.TemplateDashboard,
	constvars.TemplateProfile,
	constvars.TemplateStats,
}

// Renderer executes a page inside the shared layout. Each page is parsed into
// its own template set because every page defines the same "content" block.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(templateFiles, layoutFile, templatesDir+page)
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the page with the given status. The page is executed into a
// buffer first so a template error never leaves a half written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return exceptions.ErrTemplateRender(nil, name)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, layoutName, data)
	if err != nil {
		return exceptions.ErrTemplateRender(err, name)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

func StaticHandler() http.Handler {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(constvars.PathStatic+"/", http.FileServer(http.FS(assets)))
}
