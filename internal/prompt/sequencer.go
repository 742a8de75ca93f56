package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ballerina-integrator/baltemplates/internal/logging"
	"github.com/ballerina-integrator/baltemplates/internal/outcome"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
)

// State is a step of the prompt sequence.
type State int

const (
	Idle State = iota
	AwaitingTemplateChoice
	AwaitingName
	AwaitingFolder
	Ready
	Dispatched
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingTemplateChoice:
		return "awaiting-template-choice"
	case AwaitingName:
		return "awaiting-name"
	case AwaitingFolder:
		return "awaiting-folder"
	case Ready:
		return "ready"
	case Dispatched:
		return "dispatched"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a step is requested out of order.
var ErrInvalidTransition = errors.New("invalid prompt transition")

// SelectionState holds the answers collected so far in the current cycle.
// A nil field has not been answered.
type SelectionState struct {
	TemplateID *string
	Name       *string
	Folder     *string
}

func (s SelectionState) complete() bool {
	return s.TemplateID != nil && s.Name != nil && s.Folder != nil
}

// Selection is a completed SelectionState, ready for dispatch.
type Selection struct {
	Mode       outcome.Mode
	TemplateID string
	Name       string
	Folder     string
}

// Sequencer walks one cycle through the prompts. It holds the only
// SelectionState and is not meant to run two cycles at once.
type Sequencer struct {
	prompter Prompter
	startDir string
	log      *logging.Logger

	mu    sync.Mutex
	state State
	sel   SelectionState
}

// NewSequencer returns a Sequencer in the Idle state. startDir is where the
// folder prompt opens.
func NewSequencer(p Prompter, startDir string, log *logging.Logger) *Sequencer {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Sequencer{prompter: p, startDir: startDir, log: log}
}

// State returns the current step.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the answers collected so far.
func (s *Sequencer) Current() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Show starts a new cycle: the template list is on screen and the previous
// answers are discarded.
func (s *Sequencer) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = SelectionState{}
	s.transition(AwaitingTemplateChoice)
}

// Choose records the chosen template. NewProjectID selects the new-project
// flow; any other id is a module template.
func (s *Sequencer) Choose(templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != AwaitingTemplateChoice {
		return fmt.Errorf("%w: choose in state %s", ErrInvalidTransition, s.state)
	}
	if strings.TrimSpace(templateID) == "" {
		return fmt.Errorf("%w: empty template id", ErrInvalidTransition)
	}
	s.sel.TemplateID = &templateID
	s.transition(AwaitingName)
	return nil
}

// Collect asks for the name and then the folder. A dismissed prompt, or a
// blank answer, cancels the cycle: the sequencer returns to Idle and
// ErrCancelled is returned.
func (s *Sequencer) Collect(ctx context.Context) (Selection, error) {
	s.mu.Lock()
	if s.state != AwaitingName {
		state := s.state
		s.mu.Unlock()
		return Selection{}, fmt.Errorf("%w: collect in state %s", ErrInvalidTransition, state)
	}
	templateID := *s.sel.TemplateID
	s.mu.Unlock()

	mode := ModeFor(templateID)

	if err := ctx.Err(); err != nil {
		s.cancel()
		return Selection{}, err
	}
	name, err := s.prompter.Input(nameRequest(mode, templateID))
	if err != nil || strings.TrimSpace(name) == "" {
		return Selection{}, s.abort("name", err)
	}
	name = strings.TrimSpace(name)

	s.mu.Lock()
	s.sel.Name = &name
	s.transition(AwaitingFolder)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		s.cancel()
		return Selection{}, err
	}
	folder, err := s.prompter.SelectFolder("Select the target folder", s.startDir)
	if err != nil || strings.TrimSpace(folder) == "" {
		return Selection{}, s.abort("folder", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Folder = &folder
	if !s.sel.complete() {
		s.reset()
		return Selection{}, ErrCancelled
	}
	s.transition(Ready)
	return Selection{Mode: mode, TemplateID: templateID, Name: name, Folder: folder}, nil
}

// MarkDispatched hands a Ready cycle over to the dispatcher.
func (s *Sequencer) MarkDispatched() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Ready {
		return fmt.Errorf("%w: dispatch in state %s", ErrInvalidTransition, s.state)
	}
	s.transition(Dispatched)
	return nil
}

// Cancel aborts the current cycle from any state.
func (s *Sequencer) Cancel() {
	s.cancel()
}

// ModeFor maps a template id to its flow.
func ModeFor(templateID string) outcome.Mode {
	if templateID == templates.NewProjectID {
		return outcome.NewProject
	}
	return outcome.AddModule
}

func nameRequest(mode outcome.Mode, templateID string) InputRequest {
	if mode == outcome.NewProject {
		return InputRequest{
			Title:       "Enter value for project name",
			Value:       templates.NewProjectID,
			Placeholder: templates.NewProjectID,
		}
	}
	return InputRequest{
		Title:       "Enter value for module name",
		Value:       templateID,
		Placeholder: templateID,
	}
}

// abort cancels the cycle and converts the prompt error. Non-cancel errors
// are returned wrapped so the caller can log them; they still cancel.
func (s *Sequencer) abort(step string, err error) error {
	s.cancel()
	if err == nil || errors.Is(err, ErrCancelled) {
		return ErrCancelled
	}
	return fmt.Errorf("%s prompt: %w", step, err)
}

func (s *Sequencer) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(Cancelled)
	s.reset()
}

// reset must be called with mu held.
func (s *Sequencer) reset() {
	s.sel = SelectionState{}
	s.transition(Idle)
}

// transition must be called with mu held.
func (s *Sequencer) transition(to State) {
	s.log.Debug("prompt state", "from", s.state.String(), "to", to.String())
	s.state = to
}
