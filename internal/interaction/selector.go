// Where: internal/interaction/selector.go
// What: Interactive prompt implementation using the huh library.
// Why: Give terminal users line editing and hidden input for secrets.
package interaction

import (
	"os"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, hidden bool) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Value(&value)
	if hidden {
		input = input.EchoMode(huh.EchoModePassword)
	}
	if err := input.Run(); err != nil {
		return "", err
	}
	return value, nil
}

func (p HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	value := defaultYes
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		return false, err
	}
	return value, nil
}

// NewDefaultPrompter returns a HuhPrompter on a real terminal and an
// IOPrompter otherwise, so piped input still works.
func NewDefaultPrompter() Prompter {
	if IsTerminal(os.Stdin) {
		return HuhPrompter{}
	}
	return IOPrompter{In: os.Stdin, Out: os.Stderr}
}
