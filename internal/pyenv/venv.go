// Where: internal/pyenv/venv.go
// What: Virtual environment descriptor and lifecycle operations.
// Why: Centralize venv paths so handlers never hardcode bin/Scripts layout.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Env describes a project's virtual environment directory. At most one
// environment exists per project root; concurrent invocations against
// the same root are not supported.
type Env struct {
	ProjectDir string
	Dir        string
}

// NewEnv builds an Env for the project root. dir defaults to "venv".
func NewEnv(projectDir, dir string) Env {
	if strings.TrimSpace(dir) == "" {
		dir = "venv"
	}
	return Env{ProjectDir: projectDir, Dir: dir}
}

// Path returns the absolute environment directory.
func (e Env) Path() string {
	if filepath.IsAbs(e.Dir) {
		return e.Dir
	}
	return filepath.Join(e.ProjectDir, e.Dir)
}

// Exists reports whether the environment directory is present.
func (e Env) Exists() bool {
	info, err := os.Stat(e.Path())
	return err == nil && info.IsDir()
}

// Create runs `python -m venv <dir>` with the given interpreter.
func (e Env) Create(ctx context.Context, runner CommandRunner, python string) error {
	if err := runner.Run(ctx, e.ProjectDir, python, "-m", "venv", e.Dir); err != nil {
		return fmt.Errorf("create virtual environment: %w", err)
	}
	return nil
}

// Remove deletes the environment directory and everything under it.
func (e Env) Remove() error {
	return os.RemoveAll(e.Path())
}

func (e Env) binDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Path(), "Scripts")
	}
	return filepath.Join(e.Path(), "bin")
}

// Python returns the interpreter inside the environment.
func (e Env) Python() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.binDir(), "python.exe")
	}
	return filepath.Join(e.binDir(), "python")
}

// Pip returns the pip binary inside the environment.
func (e Env) Pip() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.binDir(), "pip.exe")
	}
	return filepath.Join(e.binDir(), "pip")
}

// ActivateCommand returns the shell command a user would type to
// activate the environment manually. Advisory text only.
func (e Env) ActivateCommand() string {
	if runtime.GOOS == "windows" {
		return e.Dir + "\\Scripts\\activate"
	}
	return "source " + e.Dir + "/bin/activate"
}

// ProcessEnv builds the child-process environment for running inside the
// venv: the bin directory is prepended to PATH, VIRTUAL_ENV is set, and
// PYTHONHOME is dropped. The API key is threaded in explicitly rather
// than relying on a process-wide export.
func (e Env) ProcessEnv(base []string, apiKey string) []string {
	env := make([]string, 0, len(base)+3)
	sep := string(os.PathListSeparator)
	sawPath := false
	for _, entry := range base {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		// Windows environment keys are case-insensitive ("Path").
		switch {
		case strings.EqualFold(key, "PYTHONHOME"):
			continue
		case strings.EqualFold(key, "VIRTUAL_ENV"):
			continue
		case strings.EqualFold(key, "FIRECRAWL_API_KEY") && apiKey != "":
			continue
		case strings.EqualFold(key, "PATH"):
			sawPath = true
			env = append(env, "PATH="+e.binDir()+sep+value)
		default:
			env = append(env, entry)
		}
	}
	if !sawPath {
		env = append(env, "PATH="+e.binDir())
	}
	env = append(env, "VIRTUAL_ENV="+e.Path())
	if apiKey != "" {
		env = append(env, "FIRECRAWL_API_KEY="+apiKey)
	}
	return env
}
