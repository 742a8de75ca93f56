package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ballerina-integrator/baltemplates/internal/host"
	"github.com/ballerina-integrator/baltemplates/internal/outcome"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/spf13/cobra"
)

// runDirect runs one dispatch cycle with the answers taken from the command
// line. Any outcome other than success exits non-zero.
func runDirect(cmd *cobra.Command, templateID, name, dir string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.template(templateID); err != nil {
		return err
	}
	if dir == "" {
		dir = s.workspace()
	}
	folder, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	term := host.NewTerminal(cmd.OutOrStdout(), s.catalog,
		host.WithOpenCommand(s.settings.OpenCommand),
		host.WithLogger(s.log),
	)
	d, seq := s.dispatcher(prompt.Answers{Name: name, Folder: folder}, term)

	seq.Show()
	out, err := d.Cycle(ctx, templateID)
	if err != nil {
		return err
	}
	if out.Kind != outcome.Success {
		return errReported
	}
	return nil
}
