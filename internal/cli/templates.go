package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ballerina-integrator/baltemplates/internal/config"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
	"github.com/spf13/cobra"
)

var templatesJSON bool

func init() {
	templatesListCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesValidateCmd)
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the template catalog",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project and module templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := templates.Load(config.Current().TemplatesFile)
		if err != nil {
			return err
		}
		if templatesJSON {
			data, err := json.MarshalIndent(cat.Templates, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}

		last := config.LastTemplate()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tNAME\t")
		for _, t := range cat.Templates {
			mark := ""
			if t.ID == last {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Kind, t.Name, mark)
		}
		return w.Flush()
	},
}

var templatesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a template catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog validation: %s\n", path)

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return errReported
		}
		result, err := templates.Validate(data)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return errReported
		}
		if result.Valid {
			fmt.Fprintf(out, "  [ OK ] Valid catalog\n")
			return nil
		}

		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return errReported
	},
}
