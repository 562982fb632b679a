// Where: internal/app/info.go
// What: Status view shown when fcenv runs without arguments.
// Why: Give users a quick view of interpreter, environment, and credential state.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/firecrawl-community/fcenv/internal/config"
	"github.com/firecrawl-community/fcenv/internal/pyenv"
	"github.com/firecrawl-community/fcenv/internal/version"
)

// runInfo displays the current environment status. Used by Run when
// fcenv is invoked without arguments.
func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	cfg := config.LoadGlobalConfigOrDefault()

	fmt.Fprintf(out, "fcenv %s\n\n", version.GetVersion())

	python, err := resolveInterpreter(cli, deps, cfg)
	if err != nil {
		fmt.Fprintf(out, "❌ Python: %v\n", err)
	} else if ver, verr := pyenv.Version(context.Background(), deps.Runner, deps.ProjectDir, python); verr == nil {
		fmt.Fprintf(out, "✓ Python: %s (%s)\n", ver, python)
	} else {
		fmt.Fprintf(out, "⚠️  Python: %s (version unknown)\n", python)
	}

	env := resolveEnv(cli, deps, cfg)
	if env.Exists() {
		fmt.Fprintf(out, "✓ Virtual environment: %s\n", env.Dir)
	} else {
		fmt.Fprintf(out, "❌ Virtual environment: %s (run 'fcenv setup')\n", env.Dir)
	}

	if key := os.Getenv(APIKeyVar); key != "" {
		fmt.Fprintf(out, "✓ API key set: %s\n", maskKey(key))
	} else {
		fmt.Fprintf(out, "❌ API key not set (run 'fcenv key')\n")
	}

	target := resolveTarget(cfg)
	if _, err := os.Stat(filepath.Join(deps.ProjectDir, target)); err == nil {
		fmt.Fprintf(out, "✓ Client script: %s\n", target)
	} else {
		fmt.Fprintf(out, "❌ Client script missing: %s\n", target)
	}

	return 0
}
