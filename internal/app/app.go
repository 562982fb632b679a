// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/firecrawl-community/fcenv/internal/config"
	"github.com/firecrawl-community/fcenv/internal/version"
	"github.com/joho/godotenv"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Venv    string `help:"Virtual environment directory (default: venv)"`
	Python  string `help:"Python interpreter to use"`
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Setup   SetupCmd   `cmd:"" help:"Create the virtual environment and install dependencies"`
	Key     KeyCmd     `cmd:"" help:"Set the Firecrawl API key for this session"`
	Run     RunCmd     `cmd:"" passthrough:"" help:"Launch the Firecrawl client inside the virtual environment"`
	Extras  ExtrasCmd  `cmd:"" help:"Install optional free-tier packages (search, local extraction)"`
	Doctor  DoctorCmd  `cmd:"" help:"Verify the installation inside the virtual environment"`
	Config  ConfigCmd  `cmd:"" name:"config" help:"Manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	SetupCmd struct{}
	KeyCmd   struct {
		Value string `arg:"" optional:"" help:"API key (prompted when omitted)"`
	}
	RunCmd struct {
		Args []string `arg:"" optional:"" help:"Arguments forwarded to the client"`
	}
	ExtrasCmd  struct{}
	DoctorCmd  struct{}
	VersionCmd struct{}
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	SetPython ConfigSetPythonCmd `cmd:"" name:"set-python" help:"Persist a Python interpreter override"`
}

type ConfigSetPythonCmd struct {
	Path string `arg:"" help:"Interpreter path"`
}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments, identifies the requested command, and
// dispatches to the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	deps = deps.withDefaults()

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Handle no arguments: show current environment status.
	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	// Load environment file if provided or if .env exists in the project.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"setup":  runSetup,
		"key":    runKey,
		"run":    runLaunch,
		"extras": runExtras,
		"doctor": runDoctor,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int {
			fmt.Fprintln(out, version.GetVersion())
			return 0
		},
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "run ", handler: runLaunch},
		{prefix: "key ", handler: runKey},
		{prefix: "config set-python", handler: runConfigSetPython},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// commandName extracts the first non-flag argument from the command
// line, which represents the command name. Recognizes and skips known
// flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "--venv", "--python", "--env-file":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// handleParseError provides user-friendly messages for parse failures.
func handleParseError(args []string, err error, out io.Writer) int {
	if cmd := commandName(args); cmd == "config" && strings.Contains(err.Error(), "expected") {
		fmt.Fprintln(out, "Interpreter path required.")
		fmt.Fprintln(out, "Usage: fcenv config set-python <path>")
		return 1
	}
	return exitWithError(out, err)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
