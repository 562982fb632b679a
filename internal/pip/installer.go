// Where: internal/pip/installer.go
// What: pip invocations for manifest, package, editable, and try-list installs.
// Why: Keep command construction in one place; handlers only report results.
package pip

import (
	"context"
	"fmt"

	"github.com/firecrawl-community/fcenv/internal/pyenv"
)

// Attempt records the outcome of one candidate package install.
type Attempt struct {
	Package string
	Err     error
}

// Upgrade runs `python -m pip install --upgrade pip` inside the
// environment. Callers treat a failure as a warning.
func Upgrade(ctx context.Context, runner pyenv.CommandRunner, env pyenv.Env) error {
	return runner.Run(ctx, env.ProjectDir, env.Python(), "-m", "pip", "install", "--upgrade", "pip")
}

// InstallManifest installs every entry of a requirements manifest. The
// manifest is consumed opaquely; pip does all parsing and resolution.
func InstallManifest(ctx context.Context, runner pyenv.CommandRunner, env pyenv.Env, manifest string) error {
	if err := runner.Run(ctx, env.ProjectDir, env.Pip(), "install", "-r", manifest); err != nil {
		return fmt.Errorf("install %s: %w", manifest, err)
	}
	return nil
}

// InstallPackage installs a single published package.
func InstallPackage(ctx context.Context, runner pyenv.CommandRunner, env pyenv.Env, name string) error {
	if err := reportable(runner.Run(ctx, env.ProjectDir, env.Pip(), "install", name), name); err != nil {
		return err
	}
	return nil
}

// InstallEditable installs a local source directory in development mode
// so changes take effect without reinstallation.
func InstallEditable(ctx context.Context, runner pyenv.CommandRunner, env pyenv.Env, dir string) error {
	if err := runner.Run(ctx, env.ProjectDir, env.Pip(), "install", "-e", dir); err != nil {
		return fmt.Errorf("install editable %s: %w", dir, err)
	}
	return nil
}

// InstallFirst attempts candidates in order, stopping at the first
// success. Every tried candidate gets exactly one Attempt. The boolean
// reports whether any candidate installed. Nothing is rolled back.
func InstallFirst(ctx context.Context, runner pyenv.CommandRunner, env pyenv.Env, candidates []string) ([]Attempt, bool) {
	attempts := make([]Attempt, 0, len(candidates))
	for _, name := range candidates {
		err := InstallPackage(ctx, runner, env, name)
		attempts = append(attempts, Attempt{Package: name, Err: err})
		if err == nil {
			return attempts, true
		}
	}
	return attempts, false
}

func reportable(err error, name string) error {
	if err != nil {
		return fmt.Errorf("install %s: %w", name, err)
	}
	return nil
}
