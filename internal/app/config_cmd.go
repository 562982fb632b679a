// Where: internal/app/config_cmd.go
// What: Config subcommands.
// Why: Persist per-user defaults such as the interpreter override.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/firecrawl-community/fcenv/internal/config"
)

// runConfigSetPython executes 'config set-python'. The path must at
// least answer --version before it is persisted.
func runConfigSetPython(cli CLI, deps Dependencies, out io.Writer) int {
	path := strings.TrimSpace(cli.Config.SetPython.Path)
	if path == "" {
		fmt.Fprintln(out, "interpreter path is required")
		return 1
	}

	if err := deps.Runner.RunQuiet(context.Background(), deps.ProjectDir, path, "--version"); err != nil {
		fmt.Fprintf(out, "❌ %s does not look like a runnable Python interpreter\n", path)
		return 1
	}

	cfg := config.LoadGlobalConfigOrDefault()
	cfg.PythonPath = path

	configPath, err := config.GlobalConfigPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	if err := config.SaveGlobalConfig(configPath, cfg); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "✓ Python interpreter set to %s\n", path)
	return 0
}
