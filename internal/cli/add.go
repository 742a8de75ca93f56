package cli

import (
	"fmt"

	"github.com/ballerina-integrator/baltemplates/internal/branding"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
	"github.com/spf13/cobra"
)

var (
	addTemplate string
	addDir      string
)

func init() {
	addCmd.Flags().StringVarP(&addTemplate, "template", "t", "", "Module template id (see 'templates list')")
	addCmd.Flags().StringVarP(&addDir, "dir", "d", "", "Ballerina project folder (default: workspace.dir or the current directory)")
	_ = addCmd.MarkFlagRequired("template")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a module from a template to a Ballerina project",
	Long: `Add a module to an existing Ballerina project without prompting. Runs
'<tool> add <name> -t <namespace>/<template>' in the project folder.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addTemplate == templates.NewProjectID {
			return fmt.Errorf("%s is not a module template; use '%s new'", addTemplate, branding.CLIName())
		}
		return runDirect(cmd, addTemplate, args[0], addDir)
	},
}
