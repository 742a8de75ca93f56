// Package doctor runs the health checks behind `baltemplates doctor`: the
// project CLI on PATH and its version, the config directory, and the
// template catalog.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
)

// MinToolVersion is the oldest tool version known to print the messages the
// outcome rules match.
const MinToolVersion = "1.0.0"

// Status of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusMiss Status = "MISS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

func (s Status) label() string {
	if s == StatusOK {
		return " OK "
	}
	return string(s)
}

// Check is the result of one diagnostic.
type Check struct {
	Section string
	Status  Status
	Detail  string
}

// Report is the ordered list of checks.
type Report []Check

// Failed reports whether any check failed or is missing.
func (r Report) Failed() bool {
	for _, c := range r {
		if c.Status == StatusFail || c.Status == StatusMiss {
			return true
		}
	}
	return false
}

// Write prints the report grouped by section.
func (r Report) Write(w io.Writer) {
	section := ""
	for _, c := range r {
		if c.Section != section {
			section = c.Section
			fmt.Fprintf(w, "%s check:\n", section)
		}
		fmt.Fprintf(w, "  [%s] %s\n", c.Status.label(), c.Detail)
	}
}

// Versioner runs the tool's version command.
type Versioner interface {
	Version(ctx context.Context) invoker.Result
	Binary() string
}

// Options select what Run inspects.
type Options struct {
	Tool        Versioner
	ConfigDir   string
	CatalogFile string // empty means the embedded catalog
	MinVersion  string
}

// Run executes every check.
func Run(ctx context.Context, opts Options) Report {
	var r Report
	r = append(r, toolChecks(ctx, opts)...)
	r = append(r, configCheck(opts.ConfigDir))
	r = append(r, catalogCheck(opts.CatalogFile))
	return r
}

func toolChecks(ctx context.Context, opts Options) []Check {
	const section = "Tool"
	bin := opts.Tool.Binary()

	res := opts.Tool.Version(ctx)
	if !res.Launched() {
		return []Check{{section, StatusMiss, fmt.Sprintf("%s not found: %s", bin, strings.TrimSpace(res.Stderr))}}
	}
	checks := []Check{{section, StatusOK, fmt.Sprintf("%s found", bin)}}

	version, ok := ParseToolVersion(res.Stdout + "\n" + res.Stderr)
	if !ok {
		return append(checks, Check{section, StatusWarn, fmt.Sprintf("could not read %s version", bin)})
	}

	minVersion := opts.MinVersion
	if minVersion == "" {
		minVersion = MinToolVersion
	}
	cmp, err := CompareVersions(version, minVersion)
	switch {
	case err != nil:
		checks = append(checks, Check{section, StatusWarn, err.Error()})
	case cmp < 0:
		checks = append(checks, Check{section, StatusFail, fmt.Sprintf("%s %s is older than %s", bin, version, minVersion)})
	default:
		checks = append(checks, Check{section, StatusOK, fmt.Sprintf("%s version %s", bin, version)})
	}
	return checks
}

func configCheck(dir string) Check {
	const section = "Config"
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return Check{section, StatusWarn, fmt.Sprintf("%s does not exist yet", dir)}
	case err != nil:
		return Check{section, StatusFail, err.Error()}
	case !info.IsDir():
		return Check{section, StatusFail, fmt.Sprintf("%s is not a directory", dir)}
	}
	return Check{section, StatusOK, dir}
}

func catalogCheck(path string) Check {
	const section = "Catalog"
	name := path
	if name == "" {
		name = "embedded catalog"
	}
	cat, err := templates.Load(path)
	if err != nil {
		return Check{section, StatusFail, err.Error()}
	}
	return Check{section, StatusOK, fmt.Sprintf("%s: %d templates", name, len(cat.Templates))}
}

var versionPattern = regexp.MustCompile(`v?\d+\.\d+(\.\d+)?`)

// ParseToolVersion extracts the first version number from the tool's
// version output, e.g. "Ballerina 2201.8.0 (Swan Lake Update 8)".
func ParseToolVersion(output string) (string, bool) {
	v := versionPattern.FindString(output)
	return v, v != ""
}

// CompareVersions compares two version strings using semver.
// Returns -1 if current < other, 0 if equal, 1 if current > other.
func CompareVersions(current, other string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", current, err)
	}
	ov, err := parseSemver(other)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", other, err)
	}
	return cv.Compare(ov), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
