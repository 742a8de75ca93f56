package invoker

import (
	"strings"
)

// Request is one invocation of the external tool. Build it with NewProject or
// AddModule; its fields are not modified after construction.
type Request struct {
	WorkingDir string
	Args       []string
}

// NewProject builds `new <name>` run inside dir.
func NewProject(dir, name string) Request {
	return Request{WorkingDir: dir, Args: []string{"new", name}}
}

// AddModule builds `add <name> -t <namespace>/<templateID>` run inside dir.
func AddModule(dir, name, namespace, templateID string) Request {
	return Request{
		WorkingDir: dir,
		Args:       []string{"add", name, "-t", namespace + "/" + templateID},
	}
}

// Command builds an arbitrary invocation of a tool inside dir.
func Command(dir string, args ...string) Request {
	return Request{WorkingDir: dir, Args: append([]string(nil), args...)}
}

// CommandLine renders the request as a shell-like string for logs and messages.
func (r Request) CommandLine(binary string) string {
	parts := make([]string, 0, len(r.Args)+1)
	parts = append(parts, binary)
	for _, a := range r.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
