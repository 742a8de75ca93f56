package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/Masterminds/sprig/v3"

	"github.com/ballerina-integrator/baltemplates/internal/templates"
)

//go:embed assets/*.html.tmpl assets/*.css
var assetFS embed.FS

var templateCache sync.Map

// HomeData feeds the home page.
type HomeData struct {
	Title     string
	Namespace string
	Project   *templates.Template
	Modules   []templates.Template
	Last      string
}

// FormData feeds the parameter form page.
type FormData struct {
	Template templates.Template
	Command  string
}

// NewHomeData builds the home page data from a catalog. namespace is the
// one module templates are added from.
func NewHomeData(cat *templates.Catalog, last, namespace string) HomeData {
	data := HomeData{
		Title:     "Ballerina Integration Templates",
		Namespace: namespace,
		Modules:   cat.Modules(),
		Last:      last,
	}
	for _, t := range cat.Templates {
		if t.Kind == templates.KindProject {
			data.Project = &t
			break
		}
	}
	return data
}

// WriteHomeHTML renders the home page to w.
func WriteHomeHTML(w io.Writer, data HomeData) error {
	return render(w, "home.html.tmpl", "home.css", data)
}

// WriteFormHTML renders the parameter form of a template to w.
func WriteFormHTML(w io.Writer, data FormData) error {
	return render(w, "form.html.tmpl", "form.css", data)
}

func render(w io.Writer, name, stylesheet string, data any) error {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return err
	}
	css, err := assetFS.ReadFile("assets/" + stylesheet)
	if err != nil {
		return fmt.Errorf("read stylesheet %s: %w", stylesheet, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page{Styles: template.CSS(css), Data: data}); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

type page struct {
	Styles template.CSS
	Data   any
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.HtmlFuncMap()).ParseFS(assetFS, "assets/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
