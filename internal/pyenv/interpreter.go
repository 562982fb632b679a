// Where: internal/pyenv/interpreter.go
// What: Python interpreter discovery and version gating.
// Why: Fail fast on unsupported runtimes before touching the environment.
package pyenv

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinimumVersion is the oldest Python release the client supports.
const MinimumVersion = "3.8.0"

// ErrUnsupportedRuntime is returned when the interpreter is older than
// MinimumVersion.
var ErrUnsupportedRuntime = errors.New("unsupported python version")

// ErrInterpreterNotFound is returned when no usable python binary exists
// on PATH and no override was configured.
var ErrInterpreterNotFound = errors.New("python interpreter not found")

var minimumConstraint = func() *semver.Constraints {
	c, err := semver.NewConstraint(">= " + MinimumVersion)
	if err != nil {
		panic(err)
	}
	return c
}()

// FindInterpreter locates a python binary. The override, when non-empty,
// wins unconditionally; otherwise python3 then python are tried on PATH.
// lookPath may be nil, in which case exec.LookPath is used.
func FindInterpreter(override string, lookPath func(string) (string, error)) (string, error) {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed, nil
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, candidate := range []string{"python3", "python"} {
		if path, err := lookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", ErrInterpreterNotFound
}

// Version runs `python --version` and parses the reported release.
func Version(ctx context.Context, runner CommandRunner, dir, python string) (*semver.Version, error) {
	out, err := runner.RunOutput(ctx, dir, python, "--version")
	if err != nil {
		return nil, fmt.Errorf("query python version: %w", err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts a semantic version from `python --version` output
// such as "Python 3.12.1". A missing patch component ("Python 3.8") is
// tolerated.
func ParseVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	var raw string
	for i, field := range fields {
		if strings.EqualFold(field, "python") && i+1 < len(fields) {
			raw = fields[i+1]
			break
		}
	}
	if raw == "" && len(fields) == 1 {
		raw = fields[0]
	}
	if raw == "" {
		return nil, fmt.Errorf("unrecognized python version output: %q", strings.TrimSpace(output))
	}

	// Cut pre-release suffixes like "3.13.0rc1" down to the release
	// triple: keep leading digits and dots, stop at anything else.
	cut := len(raw)
	for i, r := range raw {
		if (r < '0' || r > '9') && r != '.' {
			cut = i
			break
		}
	}
	raw = strings.TrimRight(raw[:cut], ".")
	if raw == "" {
		return nil, fmt.Errorf("unrecognized python version output: %q", strings.TrimSpace(output))
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parse python version %q: %w", raw, err)
	}
	return version, nil
}

// CheckVersion returns ErrUnsupportedRuntime when the interpreter is
// older than MinimumVersion.
func CheckVersion(version *semver.Version) error {
	if version == nil {
		return fmt.Errorf("%w: version unknown", ErrUnsupportedRuntime)
	}
	if !minimumConstraint.Check(version) {
		return fmt.Errorf("%w: %s (need %s or newer)", ErrUnsupportedRuntime, version, MinimumVersion)
	}
	return nil
}
