// Where: internal/app/doctor.go
// What: Doctor command probing the installed environment.
// Why: Catch broken installs before the user hits an import error mid-crawl.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/firecrawl-community/fcenv/internal/config"
)

// importProbes are executed inside the venv python. Each one failing
// means the corresponding package is missing or broken.
var importProbes = []struct {
	Name string
	Code string
}{
	{Name: "Firecrawl SDK", Code: "import firecrawl"},
	{Name: "Firecrawl client wrapper", Code: "import firecrawl_client"},
}

// runDoctor executes the 'doctor' command: import probes plus a
// best-effort SDK version report. Any failed import probe makes the
// command exit nonzero.
func runDoctor(cli CLI, deps Dependencies, out io.Writer) int {
	ctx := context.Background()
	cfg := config.LoadGlobalConfigOrDefault()
	env := resolveEnv(cli, deps, cfg)

	if !env.Exists() {
		fmt.Fprintf(out, "❌ Virtual environment '%s' not found.\n", env.Dir)
		fmt.Fprintln(out, "Run 'fcenv setup' first.")
		return 1
	}

	failed := false
	for _, probe := range importProbes {
		if err := deps.Runner.RunQuiet(ctx, deps.ProjectDir, env.Python(), "-c", probe.Code); err != nil {
			fmt.Fprintf(out, "❌ %s: %v\n", probe.Name, err)
			failed = true
			continue
		}
		fmt.Fprintf(out, "✓ %s import OK\n", probe.Name)
	}

	// Version report is informational only.
	versionCode := "import firecrawl; print(getattr(firecrawl, '__version__', 'unknown'))"
	if output, err := deps.Runner.RunOutput(ctx, deps.ProjectDir, env.Python(), "-c", versionCode); err == nil {
		fmt.Fprintf(out, "✓ Firecrawl SDK version: %s\n", strings.TrimSpace(string(output)))
	} else {
		fmt.Fprintln(out, "⚠️  Could not determine the SDK version")
	}

	if failed {
		fmt.Fprintln(out, "\n❌ Doctor found problems. Re-run 'fcenv setup' to repair the environment.")
		return 1
	}
	fmt.Fprintln(out, "\n✓ All checks passed")
	return 0
}
