// Where: internal/app/deps.go
// What: Dependency wiring for command handlers.
// Why: Enable swapping process execution and prompting in tests.
package app

import (
	"io"
	"os/exec"
	"strings"

	"github.com/firecrawl-community/fcenv/internal/config"
	"github.com/firecrawl-community/fcenv/internal/interaction"
	"github.com/firecrawl-community/fcenv/internal/pyenv"
)

// DefaultTargetScript is the client entry point launched by `fcenv run`
// unless the global config names another one.
const DefaultTargetScript = "firecrawl_cli.py"

// FallbackPackage is installed when no requirements manifest exists.
const FallbackPackage = "firecrawl-py"

// ManifestFile is the dependency manifest consumed, never produced.
const ManifestFile = "requirements.txt"

// LocalSDKDir is the in-repo SDK source offered as an editable install.
const LocalSDKDir = "apps/python-sdk"

// Dependencies holds all injected dependencies required for CLI command
// execution.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Runner     pyenv.CommandRunner
	Launcher   pyenv.ProcessLauncher
	Prompter   interaction.Prompter
	LookPath   func(string) (string, error)
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Runner == nil {
		d.Runner = pyenv.ExecRunner{}
	}
	if d.Launcher == nil {
		d.Launcher = pyenv.ExecLauncher{}
	}
	if d.Prompter == nil {
		d.Prompter = interaction.NewDefaultPrompter()
	}
	if d.LookPath == nil {
		d.LookPath = exec.LookPath
	}
	return d
}

// resolveEnv builds the venv descriptor for the current invocation:
// --venv flag, then the configured default, then "venv".
func resolveEnv(cli CLI, deps Dependencies, cfg config.GlobalConfig) pyenv.Env {
	dir := strings.TrimSpace(cli.Venv)
	if dir == "" {
		dir = strings.TrimSpace(cfg.VenvDir)
	}
	return pyenv.NewEnv(deps.ProjectDir, dir)
}

// resolveInterpreter picks the python binary: --python flag, then the
// configured override, then PATH discovery.
func resolveInterpreter(cli CLI, deps Dependencies, cfg config.GlobalConfig) (string, error) {
	override := strings.TrimSpace(cli.Python)
	if override == "" {
		override = strings.TrimSpace(cfg.PythonPath)
	}
	return pyenv.FindInterpreter(override, deps.LookPath)
}

// resolveTarget returns the client script to launch.
func resolveTarget(cfg config.GlobalConfig) string {
	if target := strings.TrimSpace(cfg.TargetScript); target != "" {
		return target
	}
	return DefaultTargetScript
}
