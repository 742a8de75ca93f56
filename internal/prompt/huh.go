package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter and Selector with the huh TUI library.
type HuhPrompter struct {
	// Accessible switches huh to line-based prompts for screen readers
	// and dumb terminals.
	Accessible bool
}

func (p HuhPrompter) Input(req InputRequest) (string, error) {
	value := req.Value
	field := huh.NewInput().
		Title(req.Title).
		Placeholder(req.Placeholder).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		}).
		Value(&value)

	if err := p.run(huh.NewGroup(field)); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p HuhPrompter) SelectFolder(title, startDir string) (string, error) {
	var folder string
	field := huh.NewFilePicker().
		Title(title).
		CurrentDirectory(startDir).
		DirAllowed(true).
		FileAllowed(false).
		Value(&folder)

	if err := p.run(huh.NewGroup(field)); err != nil {
		return "", err
	}
	if folder == "" {
		return "", ErrCancelled
	}
	return folder, nil
}

func (p HuhPrompter) Select(title string, options []Option, preselect string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to select")
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	selected := preselect
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected)

	if err := p.run(huh.NewGroup(field)); err != nil {
		return "", err
	}
	return selected, nil
}

func (p HuhPrompter) run(group *huh.Group) error {
	err := huh.NewForm(group).WithAccessible(p.Accessible).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}
