package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ballerina-integrator/baltemplates/internal/logging"
	"github.com/joho/godotenv"
)

// Result captures one invocation. ExitCode is nil when the process never
// started; Stderr then holds the launch error.
type Result struct {
	ExitCode *int
	Stdout   string
	Stderr   string
	Err      error
}

// Launched reports whether the process started.
func (r Result) Launched() bool {
	return r.ExitCode != nil
}

// Runner is what the dispatcher needs from an invoker.
type Runner interface {
	Start(ctx context.Context, req Request) <-chan Result
	Binary() string
}

// Invoker executes the external tool.
type Invoker struct {
	// Tool is the binary name or path, resolved through PATH.
	Tool string
	// EnvFile is an optional dotenv file merged into the child environment.
	EnvFile string
	// Stdout and Stderr, when set, receive a live copy of the process output.
	Stdout io.Writer
	Stderr io.Writer
	Log    *logging.Logger
}

// New returns an Invoker for the given tool binary.
func New(tool string, log *logging.Logger) *Invoker {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Invoker{Tool: tool, Log: log}
}

// Binary returns the configured tool name.
func (inv *Invoker) Binary() string {
	return inv.Tool
}

// Run executes req once and waits for it to exit. There is no timeout;
// only cancelling ctx stops a tool that never exits.
func (inv *Invoker) Run(ctx context.Context, req Request) Result {
	log := inv.logger().With("cmd", req.CommandLine(inv.Tool), "dir", req.WorkingDir)

	bin, err := exec.LookPath(inv.Tool)
	if err != nil {
		log.Warn("tool not found", "error", err)
		return launchFailure(fmt.Errorf("%s not found: %w", inv.Tool, err))
	}

	if info, statErr := os.Stat(req.WorkingDir); statErr != nil || !info.IsDir() {
		if statErr == nil {
			statErr = fmt.Errorf("not a directory")
		}
		log.Warn("invalid working directory", "error", statErr)
		return launchFailure(fmt.Errorf("working directory %s: %w", req.WorkingDir, statErr))
	}

	env, err := buildEnv(inv.EnvFile)
	if err != nil {
		log.Warn("loading tool environment", "error", err)
		return launchFailure(err)
	}

	cmd := exec.CommandContext(ctx, bin, req.Args...)
	cmd.Dir = req.WorkingDir
	cmd.Env = env

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = teeTo(&stdoutBuf, inv.Stdout)
	cmd.Stderr = teeTo(&stderrBuf, inv.Stderr)

	log.Debug("starting tool")
	err = cmd.Run()

	result := Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			result.ExitCode = &code
			log.Info("tool exited", "exit_code", code)
			return result
		}
		log.Warn("tool failed to start", "error", err)
		failed := launchFailure(fmt.Errorf("running %s: %w", inv.Tool, err))
		failed.Stdout = result.Stdout
		return failed
	}

	code := 0
	result.ExitCode = &code
	log.Info("tool exited", "exit_code", code)
	return result
}

// Start runs req on a goroutine. The returned channel yields exactly one
// Result and is then closed.
func (inv *Invoker) Start(ctx context.Context, req Request) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- inv.Run(ctx, req)
	}()
	return ch
}

// Version runs `<tool> version` in the current directory and returns its output.
func (inv *Invoker) Version(ctx context.Context) Result {
	wd, err := os.Getwd()
	if err != nil {
		return launchFailure(fmt.Errorf("resolving working directory: %w", err))
	}
	return inv.Run(ctx, Command(wd, "version"))
}

func (inv *Invoker) logger() *logging.Logger {
	if inv.Log == nil {
		return logging.NopLogger()
	}
	return inv.Log
}

func launchFailure(err error) Result {
	return Result{Stderr: err.Error(), Err: err}
}

func teeTo(buf *bytes.Buffer, live io.Writer) io.Writer {
	if live == nil {
		return buf
	}
	return io.MultiWriter(live, buf)
}

// buildEnv inherits the current environment and overlays the dotenv file.
func buildEnv(envFile string) ([]string, error) {
	env := os.Environ()
	if envFile == "" {
		return env, nil
	}

	vars, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("reading tool env file %s: %w", envFile, err)
	}
	for key, value := range vars {
		if strings.TrimSpace(key) == "" {
			continue
		}
		env = setEnv(env, key, value)
	}
	return env, nil
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
