package cli

import (
	"github.com/ballerina-integrator/baltemplates/internal/config"
	"github.com/ballerina-integrator/baltemplates/internal/doctor"
	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/logging"
	"github.com/spf13/cobra"
)

var doctorMinVersion string

func init() {
	doctorCmd.Flags().StringVar(&doctorMinVersion, "min-version", doctor.MinToolVersion, "Oldest acceptable tool version")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tool, configuration and template catalog",
	Long:  `Run diagnostic checks on the ballerina CLI, the config directory and the template catalog.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		inv := invoker.New(settings.ToolBinary, logging.NopLogger())
		inv.EnvFile = settings.ToolEnvFile

		report := doctor.Run(cmd.Context(), doctor.Options{
			Tool:        inv,
			ConfigDir:   config.Dir(),
			CatalogFile: settings.TemplatesFile,
			MinVersion:  doctorMinVersion,
		})
		report.Write(cmd.OutOrStdout())
		if report.Failed() {
			return errReported
		}
		return nil
	},
}
