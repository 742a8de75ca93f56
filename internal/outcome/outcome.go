// Package outcome classifies the output of the project CLI. The tool mixes
// success and error text across stdout and stderr and does not signal
// failure reliably through its exit status, so classification is an ordered
// table of substring rules. The table is the single place that knows the
// tool's wording.
package outcome

import (
	"strings"

	"github.com/ballerina-integrator/baltemplates/internal/invoker"
)

// RulesVersion identifies the rule table below. Bump it when a rule changes.
const RulesVersion = 2

// Mode is the flow an invocation belongs to.
type Mode int

const (
	NewProject Mode = iota
	AddModule
)

func (m Mode) String() string {
	switch m {
	case NewProject:
		return "new-project"
	case AddModule:
		return "add-module"
	default:
		return "unknown"
	}
}

// Kind is the classified result.
type Kind int

const (
	Success Kind = iota
	AlreadyHandled
	NotApplicable
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case AlreadyHandled:
		return "already-handled"
	case NotApplicable:
		return "not-applicable"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is a Kind with the text to show the user.
type Outcome struct {
	Kind    Kind
	Message string
}

// Tool wording matched by the rules.
const (
	ProjectCreated  = "Created new ballerina project"
	ModuleAdded     = "Added new ballerina module"
	NotAProject     = "not a ballerina project"
	AlreadyExists   = "already exists"
	NotAProjectText = "selected folder is not a valid project"
	GenericFailure  = "the tool finished without reporting a result"
)

type rule struct {
	name  string
	mode  Mode
	match func(stdout, stderr string) bool
	build func(stdout, stderr string) Outcome
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		name:  "project-created",
		mode:  NewProject,
		match: func(stdout, stderr string) bool { return either(stdout, stderr, ProjectCreated) },
		build: func(stdout, stderr string) Outcome {
			return Outcome{Kind: Success, Message: firstLineWith(stdout, stderr, ProjectCreated)}
		},
	},
	{
		// The tool reports a successful add on stderr.
		name:  "module-added",
		mode:  AddModule,
		match: func(_, stderr string) bool { return strings.Contains(stderr, ModuleAdded) },
		build: func(_, stderr string) Outcome {
			return Outcome{Kind: Success, Message: strings.TrimSpace(stderr)}
		},
	},
	{
		name:  "not-a-project",
		mode:  AddModule,
		match: func(_, stderr string) bool { return strings.Contains(stderr, NotAProject) },
		build: func(_, _ string) Outcome {
			return Outcome{Kind: NotApplicable, Message: NotAProjectText}
		},
	},
	{
		name:  "module-stderr",
		mode:  AddModule,
		match: func(_, stderr string) bool { return strings.TrimSpace(stderr) != "" },
		build: func(_, stderr string) Outcome {
			return Outcome{Kind: Failure, Message: strings.TrimSpace(stderr)}
		},
	},
	{
		name:  "project-exists",
		mode:  NewProject,
		match: func(stdout, stderr string) bool { return either(stdout, stderr, AlreadyExists) },
		build: func(stdout, stderr string) Outcome {
			return Outcome{Kind: AlreadyHandled, Message: firstLineWith(stdout, stderr, AlreadyExists)}
		},
	},
}

// Classify maps an invocation result to an Outcome. It is a pure function of
// the result's streams, its launch error and the mode; exit codes are ignored.
func Classify(result invoker.Result, mode Mode) Outcome {
	for _, r := range rules {
		if r.mode == mode && r.match(result.Stdout, result.Stderr) {
			return r.build(result.Stdout, result.Stderr)
		}
	}
	return fallback(result)
}

// Rule returns the name of the rule that decides result, or "fallback".
func Rule(result invoker.Result, mode Mode) string {
	for _, r := range rules {
		if r.mode == mode && r.match(result.Stdout, result.Stderr) {
			return r.name
		}
	}
	return "fallback"
}

func fallback(result invoker.Result) Outcome {
	if msg := strings.TrimSpace(result.Stderr); msg != "" {
		return Outcome{Kind: Failure, Message: msg}
	}
	if result.Err != nil {
		return Outcome{Kind: Failure, Message: result.Err.Error()}
	}
	return Outcome{Kind: Failure, Message: GenericFailure}
}

func either(stdout, stderr, needle string) bool {
	return strings.Contains(stdout, needle) || strings.Contains(stderr, needle)
}

// firstLineWith returns the trimmed line containing needle, preferring stdout.
func firstLineWith(stdout, stderr, needle string) string {
	for _, stream := range []string{stdout, stderr} {
		for _, line := range strings.Split(stream, "\n") {
			if strings.Contains(line, needle) {
				return strings.TrimSpace(line)
			}
		}
	}
	return needle
}
