package main

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// stdinIsTerminal reports whether stdin is an interactive terminal.
// Piped input and CI runs fall back to the random default.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptStart shows a select list of node names with def preselected.
func promptStart(names []string, def string) (string, error) {
	choice := def
	err := huh.NewSelect[string]().
		Title("Start node").
		Description("Node the algorithms start from").
		Options(huh.NewOptions(names...)...).
		Value(&choice).
		Run()
	if err != nil {
		return "", err
	}

	return choice, nil
}
