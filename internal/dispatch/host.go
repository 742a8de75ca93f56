package dispatch

import (
	"context"
)

// Severity of a user notification.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Host is the environment the dispatcher reports to: notifications, the
// open-folder and template-list commands, and the lifecycle of the current view.
type Host interface {
	Notify(sev Severity, msg string)
	OpenFolder(ctx context.Context, path string) error
	ShowTemplateList(ctx context.Context) error
	DisposeView()
}

// EventKind identifies a view event.
type EventKind int

const (
	// EventShowView means the template list is on screen.
	EventShowView EventKind = iota
	// EventTemplateSelected carries the id of the chosen template.
	EventTemplateSelected
	// EventQuit ends the dispatch loop.
	EventQuit
)

// Event is a discrete user event delivered by the view.
type Event struct {
	Kind       EventKind
	TemplateID string
}

// ShowView returns an EventShowView.
func ShowView() Event { return Event{Kind: EventShowView} }

// TemplateSelected returns an EventTemplateSelected for id.
func TemplateSelected(id string) Event { return Event{Kind: EventTemplateSelected, TemplateID: id} }

// Quit returns an EventQuit.
func Quit() Event { return Event{Kind: EventQuit} }
