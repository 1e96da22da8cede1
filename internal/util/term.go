package util

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColors determines if coloured output should be used
func ShouldUseColors() bool {
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		return false
	}

	if forceColor := os.Getenv("FORCE_COLOR"); forceColor != "" {
		return forceColor != "0"
	}

	if maestroColors := os.Getenv("MAESTRO_FORCE_COLORS"); maestroColors != "" {
		return strings.ToLower(maestroColors) == "true"
	}

	return IsTerminal()
}
