package templates

import "strings"

// NewProjectID is the template id that selects the new-project flow.
// Every other id names a module template for the add-module flow.
const NewProjectID = "new_project"

// Kind distinguishes project templates from module templates.
type Kind string

const (
	KindProject Kind = "project"
	KindModule  Kind = "module"
)

// Placeholder is a value the template expects from the user.
type Placeholder struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
}

// Template is one entry of the template list.
type Template struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	Kind         Kind          `yaml:"kind" json:"kind"`
	Tags         []string      `yaml:"tags,omitempty" json:"tags,omitempty"`
	Placeholders []Placeholder `yaml:"placeholders,omitempty" json:"placeholders,omitempty"`
}

// IsProject reports whether the template starts the new-project flow.
func (t Template) IsProject() bool {
	return t.ID == NewProjectID
}

// Catalog is the full set of templates.
type Catalog struct {
	Version   string     `yaml:"version" json:"version"`
	Namespace string     `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Templates []Template `yaml:"templates" json:"templates"`
}

// NamespaceOr returns the organization that publishes the catalog's module
// templates, or fallback when the catalog does not declare one.
func (c *Catalog) NamespaceOr(fallback string) string {
	if ns := strings.TrimSpace(c.Namespace); ns != "" {
		return ns
	}
	return fallback
}

// Find returns the template with the given id.
func (c *Catalog) Find(id string) (Template, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IDs returns the template ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		ids[i] = t.ID
	}
	return ids
}

// Modules returns only the module templates.
func (c *Catalog) Modules() []Template {
	var out []Template
	for _, t := range c.Templates {
		if t.Kind == KindModule {
			out = append(out, t)
		}
	}
	return out
}
