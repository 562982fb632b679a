// Where: internal/app/launch.go
// What: Run command delegating to the client script inside the venv.
// Why: Forward arguments and exit status untouched; fcenv adds nothing.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/firecrawl-community/fcenv/internal/config"
)

// runLaunch executes the 'run' command. The virtual environment must
// exist; otherwise the launch is not attempted at all. Arguments are
// forwarded verbatim, in order, and the child's exit code is returned
// unchanged.
func runLaunch(cli CLI, deps Dependencies, out io.Writer) int {
	cfg := config.LoadGlobalConfigOrDefault()
	env := resolveEnv(cli, deps, cfg)

	if !env.Exists() {
		fmt.Fprintf(out, "❌ Virtual environment '%s' not found.\n", env.Dir)
		fmt.Fprintln(out, "Run 'fcenv setup' first.")
		return 1
	}

	target := resolveTarget(cfg)
	args := append([]string{target}, cli.Run.Args...)
	childEnv := env.ProcessEnv(os.Environ(), os.Getenv(APIKeyVar))

	code, err := deps.Launcher.Launch(context.Background(), deps.ProjectDir, childEnv, env.Python(), args...)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
	}
	return code
}
