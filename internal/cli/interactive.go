package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ballerina-integrator/baltemplates/internal/branding"
	"github.com/ballerina-integrator/baltemplates/internal/config"
	"github.com/ballerina-integrator/baltemplates/internal/host"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	if !hasTerminal() {
		name := branding.CLIName()
		return fmt.Errorf("interactive mode needs a terminal; use '%s new' or '%s add' instead", name, name)
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	huhPrompter := prompt.HuhPrompter{Accessible: os.Getenv("ACCESSIBLE") != ""}
	term := host.NewTerminal(cmd.OutOrStdout(), s.catalog,
		host.WithSelector(huhPrompter),
		host.WithLastTemplate(config.LastTemplate),
		host.WithOpenCommand(s.settings.OpenCommand),
		host.WithLogger(s.log),
	)
	d, _ := s.dispatcher(huhPrompter, term)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return term.Serve(gctx) })
	g.Go(func() error {
		defer cancel()
		return d.Run(gctx, term.Events())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// hasTerminal reports whether stdin and stdout are both terminals.
var hasTerminal = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
