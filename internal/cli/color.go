// Package cli holds terminal helpers for the uigen command: colour,
// progress reporting, signal handling and syntax highlighting.
package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI codes, shared across the package.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	muted  = "\033[90m"
)

// ColorEnabled controls whether ANSI color codes are emitted.
// It defaults to true if stdout is a terminal and NO_COLOR is not set.
var ColorEnabled = initColorEnabled()

func initColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func paint(color, prefix, msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s%s%s%s", color, prefix, msg, reset)
	}
	return prefix + msg
}

// Success formats a message with a green check prefix.
func Success(msg string) string { return paint(green, "✓ ", msg) }

// Error formats a message with a red cross prefix.
func Error(msg string) string { return paint(red, "✗ ", msg) }

// Warn formats a message with a yellow warning prefix.
func Warn(msg string) string { return paint(yellow, "⚠ ", msg) }

// Info formats a message in cyan (no prefix).
func Info(msg string) string { return paint(cyan, "", msg) }

// Muted formats a message in grey (no prefix).
func Muted(msg string) string { return paint(muted, "", msg) }
