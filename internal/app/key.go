// Where: internal/app/key.go
// What: Key command for session-scoped API-key setup.
// Why: Validate and export the credential without ever writing it to disk.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// APIKeyVar is the environment variable the client reads.
const APIKeyVar = "FIRECRAWL_API_KEY"

// APIKeyPrefix is the expected key prefix. The check is advisory: a
// mismatch asks for confirmation instead of rejecting the value.
const APIKeyPrefix = "fc-"

// runKey executes the 'key' command. The key is taken from the
// positional argument or prompted for, soft-checked against the expected
// prefix, exported into this process, and followed by copy-pasteable
// persistence instructions. Declining the mismatch confirmation aborts
// with nothing exported.
func runKey(cli CLI, deps Dependencies, out io.Writer) int {
	value := strings.TrimSpace(cli.Key.Value)
	if value == "" {
		fmt.Fprintf(out, "API keys usually start with '%s'. Get one at https://firecrawl.dev\n", APIKeyPrefix)
		entered, err := deps.Prompter.Input("Enter your Firecrawl API key", true)
		if err != nil {
			return cancelled(out, err)
		}
		value = strings.TrimSpace(entered)
	}
	if value == "" {
		fmt.Fprintln(out, "No API key provided.")
		return 1
	}

	if !strings.HasPrefix(value, APIKeyPrefix) {
		fmt.Fprintf(out, "⚠️  API keys usually start with '%s'.\n", APIKeyPrefix)
		ok, err := deps.Prompter.Confirm("Use this value anyway?", false)
		if err != nil || !ok {
			fmt.Fprintln(out, "Cancelled. The key was not set.")
			return 1
		}
	}

	// The only process-wide export in the program, kept at this CLI
	// boundary. Child processes receive the key through an explicit
	// environment slice instead.
	if err := os.Setenv(APIKeyVar, value); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "✓ API key set for this session: %s\n", maskKey(value))
	printPersistenceInstructions(out, value)
	return 0
}

// printPersistenceInstructions shows how to keep the key across
// sessions. These are instructions only; no file is modified.
func printPersistenceInstructions(out io.Writer, value string) {
	fmt.Fprintln(out, "\nTo persist the key, add one of the following yourself:")
	fmt.Fprintf(out, "  shell profile (~/.bashrc, ~/.zshrc):\n")
	fmt.Fprintf(out, "    export %s='%s'\n", APIKeyVar, value)
	fmt.Fprintf(out, "  project .env file:\n")
	fmt.Fprintf(out, "    %s=%s\n", APIKeyVar, value)
}

// maskKey keeps the first few characters visible, enough to recognize
// the key without exposing it.
func maskKey(value string) string {
	const visible = 10
	if len(value) <= visible {
		return value[:1] + "..."
	}
	return value[:visible] + "..."
}
