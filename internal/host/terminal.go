// Package host implements the dispatcher's Host for a terminal: styled
// notifications, the home list loop and the open-folder transition.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ballerina-integrator/baltemplates/internal/dispatch"
	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/logging"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
	"github.com/ballerina-integrator/baltemplates/internal/view"
)

const homeTitle = "Ballerina Integration Templates"

// Terminal is a dispatch.Host writing to a terminal. With a Selector it also
// drives the home list and produces the view events; without one it is
// non-interactive and ShowTemplateList does nothing.
type Terminal struct {
	out      io.Writer
	styles   view.Styles
	log      *logging.Logger
	catalog  *templates.Catalog
	selector prompt.Selector
	last     func() string

	openCommand []string
	opener      func(binary string) invoker.Runner

	events chan dispatch.Event
	show   chan struct{}
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithSelector makes the Terminal interactive: Serve renders the home list
// with sel.
func WithSelector(sel prompt.Selector) Option {
	return func(t *Terminal) { t.selector = sel }
}

// WithLastTemplate sets the source of the preselected home entry.
func WithLastTemplate(fn func() string) Option {
	return func(t *Terminal) { t.last = fn }
}

// WithOpenCommand sets the command that opens a folder, e.g. "code -n".
// The folder path is appended as the last argument.
func WithOpenCommand(cmd string) Option {
	return func(t *Terminal) { t.openCommand = strings.Fields(cmd) }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(t *Terminal) {
		if l != nil {
			t.log = l
		}
	}
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer, cat *templates.Catalog, opts ...Option) *Terminal {
	t := &Terminal{
		out:     out,
		styles:  view.DefaultStyles(),
		log:     logging.NopLogger(),
		catalog: cat,
		last:    func() string { return "" },
		events:  make(chan dispatch.Event, 2),
		show:    make(chan struct{}, 1),
	}
	t.opener = func(binary string) invoker.Runner {
		return invoker.New(binary, t.log)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interactive reports whether the Terminal drives a home list.
func (t *Terminal) Interactive() bool {
	return t.selector != nil
}

// Events returns the channel of view events produced by Serve.
func (t *Terminal) Events() <-chan dispatch.Event {
	return t.events
}

// Notify prints a styled notification.
func (t *Terminal) Notify(sev dispatch.Severity, msg string) {
	var line string
	switch sev {
	case dispatch.Error:
		line = t.styles.Error.Render("✗ " + msg)
	case dispatch.Warning:
		line = t.styles.Warning.Render("! " + msg)
	default:
		line = t.styles.Info.Render("✓ " + msg)
	}
	fmt.Fprintln(t.out, line)
}

// OpenFolder runs the configured open command on path, or prints the path
// when no command is configured.
func (t *Terminal) OpenFolder(ctx context.Context, path string) error {
	if len(t.openCommand) == 0 {
		fmt.Fprintf(t.out, "  %s %s\n", t.styles.Muted.Render("folder:"), path)
		return nil
	}

	args := append(append([]string{}, t.openCommand[1:]...), path)
	runner := t.opener(t.openCommand[0])
	res := <-runner.Start(ctx, invoker.Command(path, args...))
	if !res.Launched() {
		return fmt.Errorf("run %s: %s", t.openCommand[0], strings.TrimSpace(res.Stderr))
	}
	if *res.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", t.openCommand[0], *res.ExitCode)
	}
	return nil
}

// ShowTemplateList asks Serve to render the home list again. It never blocks.
func (t *Terminal) ShowTemplateList(context.Context) error {
	if !t.Interactive() {
		return nil
	}
	select {
	case t.show <- struct{}{}:
	default:
	}
	return nil
}

// DisposeView closes the current form.
func (t *Terminal) DisposeView() {
	if !t.Interactive() {
		return
	}
	fmt.Fprintln(t.out, t.styles.Muted.Render(strings.Repeat("─", 40)))
}

// Serve renders the home list whenever it is requested and turns the choice
// into view events. Dismissing the list sends Quit. Serve returns when ctx is
// done or after Quit is sent.
func (t *Terminal) Serve(ctx context.Context) error {
	if !t.Interactive() {
		return errors.New("terminal host has no selector")
	}
	defer close(t.events)

	_ = t.ShowTemplateList(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.show:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		last := t.last()
		id, err := t.selector.Select(homeTitle, view.HomeOptions(t.catalog, last), last)
		if err != nil {
			if !errors.Is(err, prompt.ErrCancelled) {
				t.log.Error("home list failed", "error", err)
			}
			t.send(ctx, dispatch.Quit())
			return nil
		}
		if !t.send(ctx, dispatch.ShowView()) || !t.send(ctx, dispatch.TemplateSelected(id)) {
			return ctx.Err()
		}
	}
}

func (t *Terminal) send(ctx context.Context, ev dispatch.Event) bool {
	select {
	case t.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
