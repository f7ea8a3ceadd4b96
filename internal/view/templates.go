package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/vetclinic/vetclinic/internal/shared"
	"github.com/vetclinic/vetclinic/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flash       *shared.FlashMessage
	CurrentPath string
	Data        any
}

// NavItem is one entry of the navbar and of the home page cards.
type NavItem struct {
	Label string
	Path  string
}

// Sections lists the clinic screens in navbar order.
var Sections = []NavItem{
	{Label: "Clientes", Path: "/clients"},
	{Label: "Mascotas", Path: "/pets"},
	{Label: "Medicamentos", Path: "/medicines"},
	{Label: "Productos", Path: "/products"},
	{Label: "Proveedores", Path: "/providers"},
	{Label: "Veterinarios", Path: "/vets"},
}

// NewEngine parses every embedded template.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006 15:04")
		},
		"formatDay": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan. 2, 2006")
		},
		"formatNumber": func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		},
		"sections": func() []NavItem { return Sections },
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData. The page is rendered
// into a buffer first so a template failure never produces half a document.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
