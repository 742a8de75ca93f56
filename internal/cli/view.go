package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ballerina-integrator/baltemplates/internal/config"
	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/outcome"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
	"github.com/ballerina-integrator/baltemplates/internal/view"
	"github.com/spf13/cobra"
)

var (
	viewHTML   bool
	viewOutput string
)

func init() {
	viewCmd.PersistentFlags().BoolVar(&viewHTML, "html", false, "Render HTML instead of terminal output")
	viewCmd.PersistentFlags().StringVarP(&viewOutput, "output", "o", "", "Write to a file instead of stdout")
	viewCmd.AddCommand(viewHomeCmd)
	viewCmd.AddCommand(viewFormCmd)
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Render the home list or a template form",
}

var viewHomeCmd = &cobra.Command{
	Use:   "home",
	Short: "Render the template list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := templates.Load(config.Current().TemplatesFile)
		if err != nil {
			return err
		}
		last := config.LastTemplate()
		return writeView(cmd.OutOrStdout(), func(w io.Writer) error {
			if viewHTML {
				return view.WriteHomeHTML(w, view.NewHomeData(cat, last, cat.NamespaceOr(config.Current().ToolNamespace)))
			}
			_, err := fmt.Fprint(w, view.RenderHome(cat, last, view.DefaultStyles()))
			return err
		})
	},
}

var viewFormCmd = &cobra.Command{
	Use:   "form <template>",
	Short: "Render the parameter form of a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		cat, err := templates.Load(settings.TemplatesFile)
		if err != nil {
			return err
		}
		t, ok := cat.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown template %q", args[0])
		}

		req := previewRequest(t, cat.NamespaceOr(settings.ToolNamespace))
		return writeView(cmd.OutOrStdout(), func(w io.Writer) error {
			if viewHTML {
				return view.WriteFormHTML(w, view.FormData{Template: t, Command: req.CommandLine(settings.ToolBinary)})
			}
			_, err := fmt.Fprint(w, view.RenderForm(t, view.DefaultStyles()))
			return err
		})
	},
}

// previewRequest is the invocation the form would run with its defaults.
func previewRequest(t templates.Template, namespace string) invoker.Request {
	name := t.ID
	for _, p := range t.Placeholders {
		if p.Default != "" {
			name = p.Default
			break
		}
	}
	if prompt.ModeFor(t.ID) == outcome.NewProject {
		return invoker.NewProject(".", name)
	}
	return invoker.AddModule(".", name, namespace, t.ID)
}

func writeView(stdout io.Writer, render func(io.Writer) error) error {
	if viewOutput == "" {
		return render(stdout)
	}
	f, err := os.Create(viewOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", viewOutput, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", viewOutput)
	return nil
}
