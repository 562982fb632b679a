// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction so command handlers stay scriptable in tests.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter defines the interface for interactive user input and
// confirmation. Handlers receive an implementation through dependency
// injection; tests supply scripted responses.
type Prompter interface {
	Input(title string, hidden bool) (string, error)
	Confirm(title string, defaultYes bool) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IOPrompter implements Prompter over plain reader/writer streams. Used
// when stdin is not a terminal (piped input, CI).
type IOPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p IOPrompter) Input(title string, _ bool) (string, error) {
	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "%s: ", title)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p IOPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	return PromptYesNoWithIO(p.In, p.Out, title, defaultYes)
}

// PromptYesNoWithIO prints a confirmation prompt to out and reads the
// answer from in. An empty answer takes the default.
func PromptYesNoWithIO(in io.Reader, out io.Writer, message string, defaultYes bool) (bool, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", message, hint)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	if trimmed == "" {
		return defaultYes, nil
	}
	if defaultYes {
		return trimmed != "n" && trimmed != "no", nil
	}
	return trimmed == "y" || trimmed == "yes", nil
}
