//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/ballerina-integrator/baltemplates/internal/prompt"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // BALTEMPLATES_HOME
	WorkspaceDir string // where projects are created
	Tool         string // fake ballerina script
	Opener       string // fake editor script
	OpenLog      string // one line per folder the editor was asked to open
}

// fakeBallerina mimics the messages of the real CLI: `new` creates a folder
// with a Ballerina.toml, `add` requires one in the working directory.
const fakeBallerina = `case "$1" in
new)
  if [ -e "$2" ]; then
    echo "error: destination '$2' already exists" >&2
    exit 1
  fi
  mkdir "$2" && touch "$2/Ballerina.toml"
  echo "Created new ballerina project $2"
  ;;
add)
  if [ ! -f Ballerina.toml ]; then
    echo "error: not a ballerina project" >&2
    exit 1
  fi
  mkdir -p "modules/$2"
  echo "Added new ballerina module at 'modules/$2' from $4" >&2
  ;;
version)
  echo "Ballerina 2201.8.0 (Swan Lake Update 8)"
  ;;
esac`

// setupTestEnv creates isolated temp directories, the fake tool and editor,
// and points the config at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	bin := t.TempDir()
	env := &testEnv{
		HomeDir:      t.TempDir(),
		WorkspaceDir: t.TempDir(),
		Tool:         filepath.Join(bin, "ballerina"),
		Opener:       filepath.Join(bin, "editor"),
	}
	env.OpenLog = filepath.Join(bin, "opened.log")

	writeScript(t, env.Tool, fakeBallerina)
	writeScript(t, env.Opener, `echo "$@" >> "`+env.OpenLog+`"`)

	t.Setenv("BALTEMPLATES_HOME", env.HomeDir)
	t.Setenv("BALTEMPLATES_TOOL_BINARY", env.Tool)
	t.Setenv("BALTEMPLATES_OPEN_COMMAND", env.Opener)
	t.Setenv("BALTEMPLATES_WORKSPACE_DIR", env.WorkspaceDir)

	return env
}

// writeScript creates an executable shell script.
func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// answers plays back queued prompt answers; an exhausted queue dismisses.
type answers struct {
	mu      sync.Mutex
	names   []string
	folders []string
	picks   []string
}

func (a *answers) Input(prompt.InputRequest) (string, error) {
	return a.next(&a.names)
}

func (a *answers) SelectFolder(string, string) (string, error) {
	return a.next(&a.folders)
}

func (a *answers) Select(string, []prompt.Option, string) (string, error) {
	return a.next(&a.picks)
}

func (a *answers) next(queue *[]string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(*queue) == 0 {
		return "", prompt.ErrCancelled
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v, nil
}

// readLines returns the non-empty lines of path, or nil if it does not exist.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
