package prompt

import (
	"errors"
)

// ErrCancelled is returned when the user dismisses a prompt.
var ErrCancelled = errors.New("prompt dismissed")

// InputRequest describes a text prompt.
type InputRequest struct {
	Title       string
	Value       string // prefilled value
	Placeholder string
}

// Option is one entry of a selection list.
type Option struct {
	Label string
	Value string
}

// Prompter renders prompts. Implementations return ErrCancelled (possibly
// wrapped) when the user dismisses the prompt without answering.
type Prompter interface {
	Input(req InputRequest) (string, error)
	SelectFolder(title, startDir string) (string, error)
}

// Selector renders a selection list. It backs the template list view.
type Selector interface {
	Select(title string, options []Option, preselect string) (string, error)
}

// Answers is a Prompter with preset answers, used by the non-interactive
// commands. An empty field dismisses the matching prompt.
type Answers struct {
	Name   string
	Folder string
}

func (a Answers) Input(InputRequest) (string, error) {
	if a.Name == "" {
		return "", ErrCancelled
	}
	return a.Name, nil
}

func (a Answers) SelectFolder(string, string) (string, error) {
	if a.Folder == "" {
		return "", ErrCancelled
	}
	return a.Folder, nil
}
