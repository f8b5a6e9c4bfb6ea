// Package detector picks how build progress is rendered.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the progress rendering mode.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI renders live progress with the interactive view.
	ModeTUI
	// ModeLinear prints one line per finished step.
	ModeLinear
)

// ModeEnv selects the mode explicitly: "tui", "linear" (or "ci") and "auto".
const ModeEnv = "VCBUILD_PROGRESS"

// DetectEnvironment returns ModeTUI when stderr is a terminal outside CI, ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies a user override to the detected mode.
func ResolveMode(autoDetected OutputMode, override string) OutputMode {
	switch override {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
