// Where: cmd/fcenv/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"os/exec"

	"github.com/firecrawl-community/fcenv/internal/app"
	"github.com/firecrawl-community/fcenv/internal/interaction"
	"github.com/firecrawl-community/fcenv/internal/pyenv"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI: the project directory, process runners, and the prompter.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Runner:     pyenv.ExecRunner{},
		Launcher:   pyenv.ExecLauncher{},
		Prompter:   interaction.NewDefaultPrompter(),
		LookPath:   exec.LookPath,
	}, nil
}
