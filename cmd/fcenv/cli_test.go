// Where: cmd/fcenv/cli_test.go
// What: Tests for dependency wiring.
// Why: Ensure wiring failures surface instead of producing nil deps.
package main

import (
	"errors"
	"testing"
)

func TestBuildDependencies(t *testing.T) {
	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps.ProjectDir == "" {
		t.Fatal("project dir must be set")
	}
	if deps.Runner == nil || deps.Launcher == nil || deps.Prompter == nil {
		t.Fatal("runners and prompter must be wired")
	}
}

func TestBuildDependenciesGetwdFailure(t *testing.T) {
	original := getwd
	defer func() { getwd = original }()
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	if _, err := buildDependencies(); err == nil {
		t.Fatal("expected error when getwd fails")
	}
}
