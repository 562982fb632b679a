// Where: internal/app/key_test.go
// What: Tests for the key command.
// Why: The credential must only exist when the user actually confirmed it.
package app

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func keyDeps(t *testing.T, prompter *mockPrompter) Dependencies {
	t.Helper()
	isolateConfig(t)
	t.Setenv(APIKeyVar, "")
	return Dependencies{
		ProjectDir: t.TempDir(),
		Runner:     &mockRunner{},
		Launcher:   &mockLauncher{},
		Prompter:   prompter,
	}
}

func TestKeyExportsMatchingValue(t *testing.T) {
	deps := keyDeps(t, &mockPrompter{})

	var out bytes.Buffer
	exitCode := Run([]string{"key", "fc-abcdef123456"}, Dependencies{
		ProjectDir: deps.ProjectDir,
		Out:        &out,
		Runner:     deps.Runner,
		Launcher:   deps.Launcher,
		Prompter:   deps.Prompter,
	})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (output %q)", exitCode, out.String())
	}
	if got := os.Getenv(APIKeyVar); got != "fc-abcdef123456" {
		t.Fatalf("key not exported, env holds %q", got)
	}
	if !strings.Contains(out.String(), "✓ API key set for this session: fc-abcdef1...") {
		t.Fatalf("confirmation line must show the masked key: %q", out.String())
	}
	if !strings.Contains(out.String(), "To persist the key") {
		t.Fatalf("missing persistence instructions: %q", out.String())
	}
}

func TestKeyPrefixMismatchDeclinedAborts(t *testing.T) {
	prompter := &mockPrompter{
		confirmFn: func(_ string, _ bool) (bool, error) { return false, nil },
	}
	deps := keyDeps(t, prompter)

	var out bytes.Buffer
	exitCode := Run([]string{"key", "sk-wrong-prefix"}, Dependencies{
		ProjectDir: deps.ProjectDir,
		Out:        &out,
		Runner:     deps.Runner,
		Launcher:   deps.Launcher,
		Prompter:   prompter,
	})

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if got := os.Getenv(APIKeyVar); got != "" {
		t.Fatalf("declined key must not be exported, env holds %q", got)
	}
	if !strings.Contains(out.String(), "not set") {
		t.Fatalf("missing abort message: %q", out.String())
	}
}

func TestKeyPrefixMismatchConfirmedExports(t *testing.T) {
	prompter := &mockPrompter{
		confirmFn: func(_ string, _ bool) (bool, error) { return true, nil },
	}
	deps := keyDeps(t, prompter)

	exitCode := Run([]string{"key", "sk-wrong-prefix"}, Dependencies{
		ProjectDir: deps.ProjectDir,
		Out:        &bytes.Buffer{},
		Runner:     deps.Runner,
		Launcher:   deps.Launcher,
		Prompter:   prompter,
	})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if got := os.Getenv(APIKeyVar); got != "sk-wrong-prefix" {
		t.Fatalf("confirmed key must be exported, env holds %q", got)
	}
}

func TestKeyPromptsWhenArgumentOmitted(t *testing.T) {
	prompter := &mockPrompter{
		inputFn: func(_ string, hidden bool) (string, error) {
			if !hidden {
				t.Fatal("interactive key entry must hide input")
			}
			return "fc-entered-interactively", nil
		},
	}
	deps := keyDeps(t, prompter)

	exitCode := Run([]string{"key"}, Dependencies{
		ProjectDir: deps.ProjectDir,
		Out:        &bytes.Buffer{},
		Runner:     deps.Runner,
		Launcher:   deps.Launcher,
		Prompter:   prompter,
	})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if got := os.Getenv(APIKeyVar); got != "fc-entered-interactively" {
		t.Fatalf("prompted key must be exported, env holds %q", got)
	}
}

func TestKeyEmptyInputAborts(t *testing.T) {
	prompter := &mockPrompter{
		inputFn: func(string, bool) (string, error) { return "  ", nil },
	}
	deps := keyDeps(t, prompter)

	var out bytes.Buffer
	exitCode := Run([]string{"key"}, Dependencies{
		ProjectDir: deps.ProjectDir,
		Out:        &out,
		Runner:     deps.Runner,
		Launcher:   deps.Launcher,
		Prompter:   prompter,
	})

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if got := os.Getenv(APIKeyVar); got != "" {
		t.Fatalf("no key may be exported, env holds %q", got)
	}
}
