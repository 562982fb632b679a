// Where: internal/app/setup.go
// What: Setup command implementing the environment bootstrap flow.
// Why: One command takes a bare checkout to a runnable client environment.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/firecrawl-community/fcenv/internal/config"
	"github.com/firecrawl-community/fcenv/internal/pip"
	"github.com/firecrawl-community/fcenv/internal/pyenv"
)

// runSetup executes the 'setup' command: version gate, venv creation or
// reuse, dependency installation, and the optional editable SDK install.
// Installer failures are reported and the remaining steps still run; a
// missing or unsupported interpreter is fatal.
func runSetup(cli CLI, deps Dependencies, out io.Writer) int {
	ctx := context.Background()
	cfg := config.LoadGlobalConfigOrDefault()

	python, err := resolveInterpreter(cli, deps, cfg)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return 1
	}

	ver, err := pyenv.Version(ctx, deps.Runner, deps.ProjectDir, python)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Current Python version: %s\n", ver)
	if err := pyenv.CheckVersion(ver); err != nil {
		fmt.Fprintf(out, "❌ Python %s or newer is required\n", pyenv.MinimumVersion)
		return 1
	}
	fmt.Fprintln(out, "✓ Python version check passed")

	env := resolveEnv(cli, deps, cfg)
	if env.Exists() {
		fmt.Fprintf(out, "\nFound an existing virtual environment: %s\n", env.Dir)
		recreate, err := deps.Prompter.Confirm("Recreate the virtual environment?", false)
		if err != nil {
			return cancelled(out, err)
		}
		if recreate {
			fmt.Fprintln(out, "Removing the old virtual environment...")
			if err := env.Remove(); err != nil {
				fmt.Fprintf(out, "❌ %v\n", err)
				return 1
			}
		} else {
			fmt.Fprintln(out, "Using the existing virtual environment")
		}
	}

	if !env.Exists() {
		fmt.Fprintf(out, "\nCreating virtual environment: %s\n", env.Dir)
		if err := env.Create(ctx, deps.Runner, python); err != nil {
			fmt.Fprintf(out, "❌ %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "✓ Virtual environment created")
	}

	fmt.Fprintln(out, "\nUpgrading pip...")
	if err := pip.Upgrade(ctx, deps.Runner, env); err != nil {
		fmt.Fprintln(out, "⚠️  pip upgrade failed, continuing with dependency install...")
	}

	installFailed := false
	fmt.Fprintln(out, "\nInstalling dependencies...")
	manifest := filepath.Join(deps.ProjectDir, ManifestFile)
	if _, err := os.Stat(manifest); err == nil {
		if err := pip.InstallManifest(ctx, deps.Runner, env, ManifestFile); err != nil {
			fmt.Fprintf(out, "❌ %v\n", err)
			installFailed = true
		}
	} else {
		fmt.Fprintf(out, "⚠️  %s not found, installing %s...\n", ManifestFile, FallbackPackage)
		if err := pip.InstallPackage(ctx, deps.Runner, env, FallbackPackage); err != nil {
			fmt.Fprintf(out, "❌ %v\n", err)
			installFailed = true
		}
	}
	if !installFailed {
		fmt.Fprintln(out, "✓ Dependencies installed")
	}

	sdkDir := filepath.Join(deps.ProjectDir, filepath.FromSlash(LocalSDKDir))
	if info, err := os.Stat(sdkDir); err == nil && info.IsDir() {
		fmt.Fprintln(out, "\nFound a local SDK checkout (recommended for development).")
		install, err := deps.Prompter.Confirm("Install the local SDK in editable mode?", true)
		if err != nil {
			return cancelled(out, err)
		}
		if install {
			if err := pip.InstallEditable(ctx, deps.Runner, env, filepath.FromSlash(LocalSDKDir)); err != nil {
				fmt.Fprintln(out, "⚠️  Local SDK install failed, keeping the published package")
			}
		}
	}

	cfg.VenvDir = env.Dir
	cfg.LastSetup = time.Now().Format(time.RFC3339)
	if path, err := config.GlobalConfigPath(); err == nil {
		if err := config.SaveGlobalConfig(path, cfg); err != nil {
			fmt.Fprintf(out, "⚠️  Could not update %s: %v\n", path, err)
		}
	}

	printNextSteps(out, env)
	if installFailed {
		return 1
	}
	return 0
}

// printNextSteps shows the manual follow-up commands for the current
// platform. Advisory text only; nothing is written on the user's behalf.
func printNextSteps(out io.Writer, env pyenv.Env) {
	exportCmd := "export FIRECRAWL_API_KEY='your-api-key'"
	if runtime.GOOS == "windows" {
		exportCmd = "set FIRECRAWL_API_KEY=your-api-key"
	}

	fmt.Fprintln(out, "\n✓ Environment setup complete!")
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "1. Activate the virtual environment: %s\n", env.ActivateCommand())
	fmt.Fprintf(out, "2. Set the API key: %s\n", exportCmd)
	fmt.Fprintln(out, "3. Run the client: fcenv run")
	fmt.Fprintln(out, "\nTip: fcenv run activates the environment for you.")
}

// cancelled reports a prompt abort (Ctrl-C, closed stdin) as a clean
// non-zero exit.
func cancelled(out io.Writer, err error) int {
	if err == nil || errors.Is(err, io.EOF) {
		fmt.Fprintln(out, "Cancelled.")
		return 1
	}
	fmt.Fprintf(out, "Cancelled: %v\n", err)
	return 1
}
