package web

import (
	"html/template"
	"io/fs"
	"net/http"
)

type Templates struct {
	fs   fs.FS
	base *template.Template
}

func NewTemplates(fsys fs.FS) (*Templates, error) {
	base, err := template.ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{fs: fsys, base: base}, nil
}

// Render executes the full layout around the page file name.
func (t *Templates) Render(w http.ResponseWriter, name string, data any) error {
	return t.render(w, name, "layout", data)
}

// RenderFragment executes only the page's content block, for htmx swaps.
func (t *Templates) RenderFragment(w http.ResponseWriter, name string, data any) error {
	return t.render(w, name, "content", data)
}

func (t *Templates) render(w http.ResponseWriter, name, block string, data any) error {
	tmpl, err := t.base.Clone()
	if err != nil {
		return err
	}
	if _, err := tmpl.ParseFS(t.fs, "templates/"+name); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, block, data)
}
