package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/ballerina-integrator/baltemplates/internal/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompter answers prompts from fixed values; a nil answer dismisses.
type fakePrompter struct {
	name   *string
	folder *string
	err    error

	inputs  []InputRequest
	folders int
}

func (f *fakePrompter) Input(req InputRequest) (string, error) {
	f.inputs = append(f.inputs, req)
	if f.err != nil {
		return "", f.err
	}
	if f.name == nil {
		return "", ErrCancelled
	}
	return *f.name, nil
}

func (f *fakePrompter) SelectFolder(_, _ string) (string, error) {
	f.folders++
	if f.folder == nil {
		return "", ErrCancelled
	}
	return *f.folder, nil
}

func str(s string) *string { return &s }

func TestNewProjectFlow(t *testing.T) {
	p := &fakePrompter{name: str("demo"), folder: str("/ws/a")}
	s := NewSequencer(p, "/ws", nil)

	assert.Equal(t, Idle, s.State())
	s.Show()
	assert.Equal(t, AwaitingTemplateChoice, s.State())

	require.NoError(t, s.Choose("new_project"))
	assert.Equal(t, AwaitingName, s.State())

	sel, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Selection{Mode: outcome.NewProject, TemplateID: "new_project", Name: "demo", Folder: "/ws/a"}, sel)
	assert.Equal(t, Ready, s.State())

	require.Len(t, p.inputs, 1)
	assert.Equal(t, "Enter value for project name", p.inputs[0].Title)
	assert.Equal(t, "new_project", p.inputs[0].Value)

	require.NoError(t, s.MarkDispatched())
	assert.Equal(t, Dispatched, s.State())
}

func TestAddModuleFlowUsesTemplateAsDefaultName(t *testing.T) {
	p := &fakePrompter{name: str(" svc1 "), folder: str("/ws/b")}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("http_service"))

	sel, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, outcome.AddModule, sel.Mode)
	assert.Equal(t, "svc1", sel.Name)
	assert.Equal(t, "Enter value for module name", p.inputs[0].Title)
	assert.Equal(t, "http_service", p.inputs[0].Value)
}

func TestCancelFolderResetsSelection(t *testing.T) {
	p := &fakePrompter{name: str("svc1")}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("http_service"))

	_, err := s.Collect(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, SelectionState{}, s.Current())
	assert.Equal(t, 1, p.folders)
}

func TestCancelNameSkipsFolderPrompt(t *testing.T) {
	p := &fakePrompter{folder: str("/ws/a")}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("new_project"))

	_, err := s.Collect(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 0, p.folders)
	assert.Equal(t, Idle, s.State())
}

func TestBlankNameCancels(t *testing.T) {
	p := &fakePrompter{name: str("   "), folder: str("/ws/a")}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("new_project"))

	_, err := s.Collect(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 0, p.folders)
}

func TestPromptErrorCancelsAndWraps(t *testing.T) {
	boom := errors.New("terminal gone")
	p := &fakePrompter{err: boom}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("new_project"))

	_, err := s.Collect(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
	assert.Equal(t, Idle, s.State())
}

func TestContextCancelledBeforePrompt(t *testing.T) {
	p := &fakePrompter{name: str("demo"), folder: str("/ws/a")}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("new_project"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.inputs)
	assert.Equal(t, Idle, s.State())
}

func TestOutOfOrderTransitions(t *testing.T) {
	s := NewSequencer(&fakePrompter{}, "/ws", nil)

	assert.ErrorIs(t, s.Choose("new_project"), ErrInvalidTransition)
	_, err := s.Collect(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.MarkDispatched(), ErrInvalidTransition)

	s.Show()
	assert.ErrorIs(t, s.Choose(""), ErrInvalidTransition)
}

func TestShowStartsFreshCycle(t *testing.T) {
	p := &fakePrompter{name: str("demo"), folder: str("/ws/a")}
	s := NewSequencer(p, "/ws", nil)
	s.Show()
	require.NoError(t, s.Choose("new_project"))
	_, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.MarkDispatched())

	s.Show()
	assert.Equal(t, AwaitingTemplateChoice, s.State())
	assert.Equal(t, SelectionState{}, s.Current())
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, outcome.NewProject, ModeFor("new_project"))
	assert.Equal(t, outcome.AddModule, ModeFor("http_service"))
}
