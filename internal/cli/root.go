package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ballerina-integrator/baltemplates/internal/branding"
	"github.com/ballerina-integrator/baltemplates/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
)

// errReported is returned by commands whose failure was already shown to the
// user as a notification. Execute exits non-zero without printing it again.
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` lists Ballerina project and module templates, asks for a name and a
target folder, and runs the ` + branding.ToolBinary() + ` CLI to create the project or add the module.

Run without a subcommand to open the interactive template list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.RunE = runInteractive
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
