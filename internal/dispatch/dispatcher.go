package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/logging"
	"github.com/ballerina-integrator/baltemplates/internal/outcome"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
)

// NotAProjectNotice is shown when a module is added outside a project.
const NotAProjectNotice = "Please select a Ballerina project!"

// Dispatcher ties prompt answers to invocations and outcomes to notifications.
type Dispatcher struct {
	seq       *prompt.Sequencer
	runner    invoker.Runner
	host      Host
	namespace string
	remember  func(templateID string) error
	log       *logging.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithRemember sets the callback that persists the chosen template id.
func WithRemember(fn func(templateID string) error) Option {
	return func(d *Dispatcher) { d.remember = fn }
}

// New returns a Dispatcher. namespace is the organization prefix of module
// templates, e.g. "wso2".
func New(seq *prompt.Sequencer, runner invoker.Runner, host Host, namespace string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		seq:       seq,
		runner:    runner,
		host:      host,
		namespace: namespace,
		log:       logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run consumes events until EventQuit, a closed channel or ctx cancellation.
// Cycles run one at a time on the calling goroutine.
func (d *Dispatcher) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Kind {
			case EventShowView:
				d.seq.Show()
			case EventTemplateSelected:
				if _, err := d.Cycle(ctx, ev.TemplateID); err != nil && ctx.Err() != nil {
					return ctx.Err()
				}
			case EventQuit:
				d.log.Debug("dispatch loop finished")
				return nil
			}
		}
	}
}

// Cycle runs one dispatch cycle for templateID: prompts, invocation,
// notification. Whatever happens after the template is accepted, the view is
// disposed and the template list requested before Cycle returns.
// A dismissed prompt returns prompt.ErrCancelled without a notification.
// A rejected template choice only requests the template list again.
func (d *Dispatcher) Cycle(ctx context.Context, templateID string) (outcome.Outcome, error) {
	log := d.log.With("template", templateID)

	if err := d.seq.Choose(templateID); err != nil {
		log.Warn("template selection ignored", "error", err)
		d.seq.Cancel()
		if lerr := d.host.ShowTemplateList(ctx); lerr != nil {
			log.Warn("could not return to template list", "error", lerr)
		}
		return outcome.Outcome{}, err
	}
	defer d.finish(ctx, log)

	if d.remember != nil {
		if err := d.remember(templateID); err != nil {
			log.Warn("could not persist last template", "error", err)
		}
	}

	sel, err := d.seq.Collect(ctx)
	if err != nil {
		switch {
		case errors.Is(err, prompt.ErrCancelled):
			log.Info("cycle cancelled")
		case ctx.Err() != nil:
			log.Info("cycle interrupted", "error", err)
		default:
			log.Error("prompt failed", "error", err)
			d.host.Notify(Error, err.Error())
		}
		return outcome.Outcome{}, err
	}

	if err := d.seq.MarkDispatched(); err != nil {
		return outcome.Outcome{}, err
	}
	return d.Dispatch(ctx, sel), nil
}

// Dispatch invokes the tool for a completed selection, classifies the result
// and notifies the user. On success the target folder is opened.
func (d *Dispatcher) Dispatch(ctx context.Context, sel prompt.Selection) outcome.Outcome {
	req := d.Request(sel)
	log := d.log.With(
		"mode", sel.Mode.String(),
		"template", sel.TemplateID,
		"folder", sel.Folder,
		"cmd", req.CommandLine(d.runner.Binary()),
	)

	log.Info("invoking tool")
	res := <-d.runner.Start(ctx, req)

	out := outcome.Classify(res, sel.Mode)
	log.Info("tool result classified",
		"outcome", out.Kind.String(),
		"rule", outcome.Rule(res, sel.Mode),
		"rules_version", outcome.RulesVersion,
	)

	switch out.Kind {
	case outcome.Success:
		d.host.Notify(Info, successNotice(sel, out))
		if err := d.host.OpenFolder(ctx, sel.Folder); err != nil {
			log.Warn("open folder failed", "error", err)
			d.host.Notify(Warning, fmt.Sprintf("Could not open %s: %v", sel.Folder, err))
		}
	case outcome.NotApplicable:
		d.host.Notify(Warning, NotAProjectNotice)
	default:
		d.host.Notify(Error, out.Message)
	}
	return out
}

// Request builds the invocation for sel.
func (d *Dispatcher) Request(sel prompt.Selection) invoker.Request {
	if sel.Mode == outcome.NewProject {
		return invoker.NewProject(sel.Folder, sel.Name)
	}
	return invoker.AddModule(sel.Folder, sel.Name, d.namespace, sel.TemplateID)
}

func (d *Dispatcher) finish(ctx context.Context, log *logging.Logger) {
	d.host.DisposeView()
	if err := d.host.ShowTemplateList(ctx); err != nil {
		log.Warn("could not return to template list", "error", err)
	}
}

func successNotice(sel prompt.Selection, out outcome.Outcome) string {
	if sel.Mode == outcome.NewProject {
		return "Successfully created a new Ballerina project at " + sel.Folder
	}
	return out.Message
}
