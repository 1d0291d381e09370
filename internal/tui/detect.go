package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for fir.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// EnvNonInteractive forces non-interactive mode when set to "1".
const EnvNonInteractive = "FIR_NON_INTERACTIVE"

// DetectMode determines whether fir should show a spinner and colored output.
//
// Returns ModeNonInteractive if:
//   - FIR_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout or stderr is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	// Results go to stdout, the spinner to stderr; both must be terminals.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
