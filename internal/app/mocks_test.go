// Where: internal/app/mocks_test.go
// What: Shared mocks and fixtures for command handler tests.
// Why: Handlers run against scripted process and prompt behavior.
package app

import (
	"context"
	"testing"
)

type call struct {
	Name string
	Args []string
}

type mockRunner struct {
	calls  []call
	failFn func(name string, args []string) error
	output []byte
}

func (m *mockRunner) record(name string, args []string) error {
	m.calls = append(m.calls, call{Name: name, Args: args})
	if m.failFn != nil {
		return m.failFn(name, args)
	}
	return nil
}

func (m *mockRunner) Run(_ context.Context, _ string, name string, args ...string) error {
	return m.record(name, args)
}

func (m *mockRunner) RunQuiet(_ context.Context, _ string, name string, args ...string) error {
	return m.record(name, args)
}

func (m *mockRunner) RunOutput(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	if err := m.record(name, args); err != nil {
		return nil, err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("Python 3.12.1\n"), nil
}

type launchRecord struct {
	Dir  string
	Env  []string
	Name string
	Args []string
}

type mockLauncher struct {
	launches []launchRecord
	code     int
	err      error
}

func (m *mockLauncher) Launch(_ context.Context, dir string, env []string, name string, args ...string) (int, error) {
	m.launches = append(m.launches, launchRecord{Dir: dir, Env: env, Name: name, Args: args})
	return m.code, m.err
}

type mockPrompter struct {
	inputFn    func(title string, hidden bool) (string, error)
	confirmFn  func(title string, defaultYes bool) (bool, error)
	lastTitle  string
	lastHidden bool
}

func (m *mockPrompter) Input(title string, hidden bool) (string, error) {
	m.lastTitle = title
	m.lastHidden = hidden
	if m.inputFn != nil {
		return m.inputFn(title, hidden)
	}
	return "", nil
}

func (m *mockPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	m.lastTitle = title
	if m.confirmFn != nil {
		return m.confirmFn(title, defaultYes)
	}
	return defaultYes, nil
}

// isolateConfig points the global config at a throwaway directory so
// tests never touch the real ~/.fcenv.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("FCENV_CONFIG_PATH", "")
	t.Setenv("FCENV_CONFIG_HOME", t.TempDir())
}
