package view

import (
	"fmt"
	"strings"

	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
)

const lastUsedMark = "(last used)"

// HomeOptions builds the entries of the home select. The project template
// comes first, then the module templates in catalog order.
func HomeOptions(cat *templates.Catalog, last string) []prompt.Option {
	var opts []prompt.Option
	for _, t := range orderedTemplates(cat) {
		label := t.Name
		if t.IsProject() {
			label = "Create New Project"
		}
		if t.ID == last {
			label += " " + lastUsedMark
		}
		opts = append(opts, prompt.Option{Label: label, Value: t.ID})
	}
	return opts
}

// RenderHome returns the terminal rendering of the home list.
func RenderHome(cat *templates.Catalog, last string, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("Ballerina Integration Templates"))
	b.WriteString("\n")

	b.WriteString(st.Subtitle.Render("Create"))
	b.WriteString("\n")
	for _, t := range orderedTemplates(cat) {
		if !t.IsProject() {
			continue
		}
		b.WriteString(homeLine(t, last, st))
	}

	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Templates"))
	b.WriteString("\n")
	modules := cat.Modules()
	if len(modules) == 0 {
		b.WriteString(st.Muted.Render("  no module templates"))
		b.WriteString("\n")
	}
	for _, t := range modules {
		b.WriteString(homeLine(t, last, st))
	}
	return b.String()
}

// RenderForm returns the terminal rendering of a template's parameter form.
func RenderForm(t templates.Template, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render(t.Name))
	b.WriteString("\n")
	if t.Description != "" {
		b.WriteString(st.Muted.Render(t.Description))
		b.WriteString("\n\n")
	}

	var rows []string
	for _, p := range t.Placeholders {
		row := fmt.Sprintf("%-16s %s", p.Name, st.Muted.Render(valueOr(p.Default, "-")))
		if p.Description != "" {
			row += "\n" + st.Muted.Render("  "+p.Description)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, st.Muted.Render("no parameters"))
	}
	b.WriteString(st.Box.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")
	return b.String()
}

func homeLine(t templates.Template, last string, st Styles) string {
	line := st.Item.Render(fmt.Sprintf("%-24s %s", t.ID, t.Name))
	if t.ID == last {
		line = st.Selected.Render(fmt.Sprintf("%-24s %s %s", t.ID, t.Name, lastUsedMark))
	}
	return line + "\n"
}

// orderedTemplates puts project templates ahead of module templates while
// keeping catalog order within each group.
func orderedTemplates(cat *templates.Catalog) []templates.Template {
	var projects, modules []templates.Template
	for _, t := range cat.Templates {
		if t.Kind == templates.KindProject {
			projects = append(projects, t)
		} else {
			modules = append(modules, t)
		}
	}
	return append(projects, modules...)
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
