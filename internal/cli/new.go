package cli

import (
	"github.com/ballerina-integrator/baltemplates/internal/templates"
	"github.com/spf13/cobra"
)

var newDir string

func init() {
	newCmd.Flags().StringVarP(&newDir, "dir", "d", "", "Folder to create the project in (default: workspace.dir or the current directory)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new Ballerina project",
	Long: `Create a new Ballerina project without prompting. Runs '<tool> new <name>'
in the target folder and opens the folder on success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirect(cmd, templates.NewProjectID, args[0], newDir)
	},
}
