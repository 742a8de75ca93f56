package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/outcome"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	result   invoker.Result
	requests []invoker.Request
}

func (f *fakeRunner) Start(_ context.Context, req invoker.Request) <-chan invoker.Result {
	f.requests = append(f.requests, req)
	ch := make(chan invoker.Result, 1)
	ch <- f.result
	close(ch)
	return ch
}

func (f *fakeRunner) Binary() string { return "ballerina" }

type notice struct {
	sev Severity
	msg string
}

type fakeHost struct {
	calls   []string
	notices []notice
	opened  []string
	openErr error
}

func (h *fakeHost) Notify(sev Severity, msg string) {
	h.calls = append(h.calls, "notify")
	h.notices = append(h.notices, notice{sev, msg})
}

func (h *fakeHost) OpenFolder(_ context.Context, path string) error {
	h.calls = append(h.calls, "open")
	h.opened = append(h.opened, path)
	return h.openErr
}

func (h *fakeHost) ShowTemplateList(context.Context) error {
	h.calls = append(h.calls, "list")
	return nil
}

func (h *fakeHost) DisposeView() {
	h.calls = append(h.calls, "dispose")
}

func exit(code int) *int { return &code }

func newDispatcher(p prompt.Prompter, r *fakeRunner, h *fakeHost, opts ...Option) (*Dispatcher, *prompt.Sequencer) {
	seq := prompt.NewSequencer(p, "/ws", nil)
	return New(seq, r, h, "wso2", opts...), seq
}

func TestCycle_NewProjectSuccessOpensFolderOnce(t *testing.T) {
	runner := &fakeRunner{result: invoker.Result{ExitCode: exit(0), Stdout: "Created new ballerina project demo"}}
	host := &fakeHost{}
	d, seq := newDispatcher(prompt.Answers{Name: "demo", Folder: "/ws/a"}, runner, host)

	seq.Show()
	out, err := d.Cycle(context.Background(), "new_project")
	require.NoError(t, err)

	assert.Equal(t, outcome.Success, out.Kind)
	require.Len(t, runner.requests, 1)
	assert.Equal(t, "/ws/a", runner.requests[0].WorkingDir)
	assert.Equal(t, []string{"new", "demo"}, runner.requests[0].Args)
	assert.Equal(t, []string{"/ws/a"}, host.opened)
	assert.Equal(t, []notice{{Info, "Successfully created a new Ballerina project at /ws/a"}}, host.notices)
	assert.Equal(t, []string{"notify", "open", "dispose", "list"}, host.calls)
	assert.Equal(t, prompt.Dispatched, seq.State())
}

func TestCycle_AddModuleOutsideProject(t *testing.T) {
	runner := &fakeRunner{result: invoker.Result{ExitCode: exit(1), Stderr: "error: not a ballerina project"}}
	host := &fakeHost{}
	d, seq := newDispatcher(prompt.Answers{Name: "svc1", Folder: "/ws/b"}, runner, host)

	seq.Show()
	out, err := d.Cycle(context.Background(), "http_service")
	require.NoError(t, err)

	assert.Equal(t, outcome.NotApplicable, out.Kind)
	require.Len(t, runner.requests, 1)
	assert.Equal(t, []string{"add", "svc1", "-t", "wso2/http_service"}, runner.requests[0].Args)
	assert.Empty(t, host.opened)
	assert.Equal(t, []notice{{Warning, NotAProjectNotice}}, host.notices)
	assert.Equal(t, []string{"notify", "dispose", "list"}, host.calls)
}

func TestCycle_AddModuleSuccessUsesToolMessage(t *testing.T) {
	runner := &fakeRunner{result: invoker.Result{ExitCode: exit(0), Stderr: "Added new ballerina module at 'modules/svc1'\n"}}
	host := &fakeHost{}
	d, seq := newDispatcher(prompt.Answers{Name: "svc1", Folder: "/ws/proj"}, runner, host)

	seq.Show()
	out, err := d.Cycle(context.Background(), "http_service")
	require.NoError(t, err)

	assert.Equal(t, outcome.Success, out.Kind)
	assert.Equal(t, []notice{{Info, "Added new ballerina module at 'modules/svc1'"}}, host.notices)
	assert.Equal(t, []string{"/ws/proj"}, host.opened)
}

func TestCycle_CancelledFolderPromptSkipsInvocation(t *testing.T) {
	runner := &fakeRunner{}
	host := &fakeHost{}
	d, seq := newDispatcher(prompt.Answers{Name: "demo"}, runner, host)

	seq.Show()
	_, err := d.Cycle(context.Background(), "new_project")
	require.ErrorIs(t, err, prompt.ErrCancelled)

	assert.Empty(t, runner.requests)
	assert.Empty(t, host.notices)
	assert.Equal(t, []string{"dispose", "list"}, host.calls)
	assert.Equal(t, prompt.Idle, seq.State())
}

type failingPrompter struct{}

func (failingPrompter) Input(prompt.InputRequest) (string, error) { return "", errors.New("tty lost") }
func (failingPrompter) SelectFolder(string, string) (string, error) {
	return "", errors.New("tty lost")
}

func TestCycle_PromptErrorIsNotified(t *testing.T) {
	runner := &fakeRunner{}
	host := &fakeHost{}
	d, seq := newDispatcher(failingPrompter{}, runner, host)

	seq.Show()
	_, err := d.Cycle(context.Background(), "new_project")
	require.Error(t, err)

	assert.Empty(t, runner.requests)
	require.Len(t, host.notices, 1)
	assert.Equal(t, Error, host.notices[0].sev)
	assert.Contains(t, host.notices[0].msg, "tty lost")
	assert.Equal(t, []string{"notify", "dispose", "list"}, host.calls)
}

func TestCycle_RejectedChoiceReturnsToList(t *testing.T) {
	runner := &fakeRunner{}
	host := &fakeHost{}
	d, seq := newDispatcher(prompt.Answers{Name: "demo", Folder: "/ws"}, runner, host)

	_, err := d.Cycle(context.Background(), "new_project")
	require.ErrorIs(t, err, prompt.ErrInvalidTransition)
	assert.Equal(t, []string{"list"}, host.calls)
	assert.Empty(t, runner.requests)
	assert.Equal(t, prompt.Idle, seq.State())

	seq.Show()
	_, err = d.Cycle(context.Background(), "  ")
	require.ErrorIs(t, err, prompt.ErrInvalidTransition)
	assert.Equal(t, []string{"list", "list"}, host.calls)
	assert.Equal(t, prompt.Idle, seq.State())
}

func TestCycle_RemembersTemplate(t *testing.T) {
	runner := &fakeRunner{result: invoker.Result{ExitCode: exit(0), Stdout: "Created new ballerina project x"}}
	host := &fakeHost{}
	var remembered []string
	d, seq := newDispatcher(prompt.Answers{Name: "x", Folder: "/ws"}, runner, host,
		WithRemember(func(id string) error {
			remembered = append(remembered, id)
			return errors.New("read-only config")
		}))

	seq.Show()
	_, err := d.Cycle(context.Background(), "new_project")
	require.NoError(t, err)
	assert.Equal(t, []string{"new_project"}, remembered)
}

func TestDispatch_Notifications(t *testing.T) {
	tests := []struct {
		name    string
		mode    outcome.Mode
		result  invoker.Result
		want    notice
		opened  bool
		outcome outcome.Kind
	}{
		{
			name:    "project already exists",
			mode:    outcome.NewProject,
			result:  invoker.Result{ExitCode: exit(1), Stderr: "error: destination 'demo' already exists"},
			want:    notice{Error, "error: destination 'demo' already exists"},
			outcome: outcome.AlreadyHandled,
		},
		{
			name:    "module failure passes stderr through",
			mode:    outcome.AddModule,
			result:  invoker.Result{ExitCode: exit(1), Stderr: "error: invalid module name"},
			want:    notice{Error, "error: invalid module name"},
			outcome: outcome.Failure,
		},
		{
			name:    "launch failure",
			mode:    outcome.NewProject,
			result:  invoker.Result{Stderr: "exec: \"ballerina\": executable file not found in $PATH"},
			want:    notice{Error, "exec: \"ballerina\": executable file not found in $PATH"},
			outcome: outcome.Failure,
		},
		{
			name:    "project created",
			mode:    outcome.NewProject,
			result:  invoker.Result{ExitCode: exit(0), Stdout: "Created new ballerina project demo"},
			want:    notice{Info, "Successfully created a new Ballerina project at /ws/x"},
			opened:  true,
			outcome: outcome.Success,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{result: tt.result}
			host := &fakeHost{}
			d, _ := newDispatcher(prompt.Answers{}, runner, host)

			out := d.Dispatch(context.Background(), prompt.Selection{
				Mode: tt.mode, TemplateID: "x", Name: "demo", Folder: "/ws/x",
			})

			assert.Equal(t, tt.outcome, out.Kind)
			assert.Equal(t, []notice{tt.want}, host.notices)
			if tt.opened {
				assert.Equal(t, []string{"/ws/x"}, host.opened)
			} else {
				assert.Empty(t, host.opened)
			}
			assert.NotContains(t, host.calls, "dispose")
		})
	}
}

func TestDispatch_OpenFailureIsWarned(t *testing.T) {
	runner := &fakeRunner{result: invoker.Result{ExitCode: exit(0), Stdout: "Created new ballerina project demo"}}
	host := &fakeHost{openErr: errors.New("no editor")}
	d, _ := newDispatcher(prompt.Answers{}, runner, host)

	out := d.Dispatch(context.Background(), prompt.Selection{Mode: outcome.NewProject, Name: "demo", Folder: "/ws/a"})
	assert.Equal(t, outcome.Success, out.Kind)
	require.Len(t, host.notices, 2)
	assert.Equal(t, Warning, host.notices[1].sev)
	assert.Contains(t, host.notices[1].msg, "no editor")
}

func TestRun_ProcessesEventsInOrder(t *testing.T) {
	runner := &fakeRunner{result: invoker.Result{ExitCode: exit(0), Stdout: "Created new ballerina project demo"}}
	host := &fakeHost{}
	d, seq := newDispatcher(prompt.Answers{Name: "demo", Folder: "/ws/a"}, runner, host)

	events := make(chan Event, 5)
	events <- ShowView()
	events <- TemplateSelected("new_project")
	events <- ShowView()
	events <- TemplateSelected("new_project")
	events <- Quit()

	require.NoError(t, d.Run(context.Background(), events))
	assert.Len(t, runner.requests, 2)
	assert.Equal(t, []string{"/ws/a", "/ws/a"}, host.opened)
	assert.Equal(t, prompt.Dispatched, seq.State())
}

func TestRun_StopsOnClosedChannel(t *testing.T) {
	d, _ := newDispatcher(prompt.Answers{}, &fakeRunner{}, &fakeHost{})
	events := make(chan Event)
	close(events)
	require.NoError(t, d.Run(context.Background(), events))
}

func TestRun_StopsOnContext(t *testing.T) {
	d, _ := newDispatcher(prompt.Answers{}, &fakeRunner{}, &fakeHost{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := d.Run(ctx, make(chan Event))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
}
