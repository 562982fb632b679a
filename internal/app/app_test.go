// Where: internal/app/app_test.go
// What: Tests for the dispatcher, info view, and config subcommand.
// Why: Command routing glitches surface as silent misbehavior otherwise.
package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/firecrawl-community/fcenv/internal/config"
)

func TestRunUnknownCommand(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	exitCode := Run([]string{"definitely-not-a-command"}, Dependencies{
		ProjectDir: t.TempDir(),
		Out:        &out,
		Runner:     &mockRunner{},
		Launcher:   &mockLauncher{},
		Prompter:   &mockPrompter{},
	})

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
}

func TestRunVersion(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	exitCode := Run([]string{"version"}, Dependencies{
		ProjectDir: t.TempDir(),
		Out:        &out,
		Runner:     &mockRunner{},
		Launcher:   &mockLauncher{},
		Prompter:   &mockPrompter{},
	})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatal("version output must not be empty")
	}
}

func TestRunNoArgsShowsStatus(t *testing.T) {
	isolateConfig(t)
	t.Setenv(APIKeyVar, "")

	var out bytes.Buffer
	exitCode := Run(nil, Dependencies{
		ProjectDir: t.TempDir(),
		Out:        &out,
		Runner:     &mockRunner{},
		Launcher:   &mockLauncher{},
		Prompter:   &mockPrompter{},
		LookPath:   func(name string) (string, error) { return "/usr/bin/" + name, nil },
	})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	output := out.String()
	if !strings.Contains(output, "Virtual environment") {
		t.Fatalf("missing venv status: %q", output)
	}
	if !strings.Contains(output, "API key not set") {
		t.Fatalf("missing key status: %q", output)
	}
}

func TestCommandNameSkipsFlagPairs(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"setup"}, want: "setup"},
		{args: []string{"--venv", "env2", "setup"}, want: "setup"},
		{args: []string{"--python", "/usr/bin/python3", "run", "crawl"}, want: "run"},
		{args: []string{"--env-file", ".env.local", "key"}, want: "key"},
		{args: nil, want: ""},
	}
	for _, tc := range cases {
		if got := commandName(tc.args); got != tc.want {
			t.Fatalf("commandName(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestDispatchCommandRouting(t *testing.T) {
	isolateConfig(t)
	deps := Dependencies{
		ProjectDir: t.TempDir(),
		Runner:     &mockRunner{},
		Launcher:   &mockLauncher{},
		Prompter:   &mockPrompter{},
	}

	cases := []struct {
		command string
		handled bool
	}{
		{command: "run", handled: true},
		{command: "run crawl https://example.com", handled: true},
		{command: "key fc-abc", handled: true},
		{command: "config set-python /usr/bin/python3", handled: true},
		{command: "runway", handled: false},
		{command: "keychain", handled: false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		_, handled := dispatchCommand(tc.command, CLI{}, deps, &out)
		if handled != tc.handled {
			t.Fatalf("dispatchCommand(%q) handled=%v, want %v", tc.command, handled, tc.handled)
		}
	}
}

func TestConfigSetPythonRejectsBrokenInterpreter(t *testing.T) {
	isolateConfig(t)
	runner := &mockRunner{
		failFn: func(string, []string) error { return errors.New("exec format error") },
	}

	var out bytes.Buffer
	exitCode := Run([]string{"config", "set-python", "/bin/false"}, Dependencies{
		ProjectDir: t.TempDir(),
		Out:        &out,
		Runner:     runner,
		Launcher:   &mockLauncher{},
		Prompter:   &mockPrompter{},
	})

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "does not look like a runnable Python interpreter") {
		t.Fatalf("missing validation message: %q", out.String())
	}
}

func TestConfigSetPythonPersistsOverride(t *testing.T) {
	isolateConfig(t)
	runner := &mockRunner{}

	var out bytes.Buffer
	exitCode := Run([]string{"config", "set-python", "/opt/python/bin/python3"}, Dependencies{
		ProjectDir: t.TempDir(),
		Out:        &out,
		Runner:     runner,
		Launcher:   &mockLauncher{},
		Prompter:   &mockPrompter{},
	})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (output %q)", exitCode, out.String())
	}
	if !strings.Contains(out.String(), "✓ Python interpreter set to /opt/python/bin/python3") {
		t.Fatalf("missing confirmation: %q", out.String())
	}
	if cfg := config.LoadGlobalConfigOrDefault(); cfg.PythonPath != "/opt/python/bin/python3" {
		t.Fatalf("override not persisted, config holds %+v", cfg)
	}
}
